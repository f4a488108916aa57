package session

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService() (*ServiceImpl, *StubSessionRepository, *utils.MockClock, context.Context) {
	repo := NewStubSessionRepository()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}
	service := &ServiceImpl{repo: repo, ttl: 24 * time.Hour, clock: clock}
	return service, repo, clock, context.Background()
}

func TestServiceImpl_CreateAndValidate(t *testing.T) {
	service, _, _, ctx := setupService()

	session, err := service.Create(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	userId, err := service.Validate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, 42, userId)
}

func TestServiceImpl_Validate_UnknownToken(t *testing.T) {
	service, _, _, ctx := setupService()

	_, err := service.Validate(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestServiceImpl_Validate_ExpiredSessionIsRemoved(t *testing.T) {
	service, repo, clock, ctx := setupService()

	session, err := service.Create(ctx, 42)
	require.NoError(t, err)

	clock.SetNow(clock.Now().Add(25 * time.Hour))

	_, err = service.Validate(ctx, session.Token)
	assert.ErrorIs(t, err, ErrSessionInvalid)

	// The expired row is gone, not just rejected.
	_, err = repo.Find(ctx, session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestServiceImpl_Delete(t *testing.T) {
	service, repo, _, ctx := setupService()

	session, err := service.Create(ctx, 42)
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, session.Token))
	_, err = repo.Find(ctx, session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
