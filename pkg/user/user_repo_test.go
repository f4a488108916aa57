package user

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepoImpl_CreateAndGet(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	createdAt := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	id, err := repo.CreateUser(ctx, User{
		Uid:          "uid-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		CreatedAt:    createdAt,
	})
	require.NoError(t, err)

	found, err := repo.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.True(t, found.CreatedAt.Equal(createdAt))
}

func TestUserRepoImpl_GetParsesDefaultedCreatedAt(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	// Rows inserted without an explicit created_at get SQLite's datetime('now')
	// format, not RFC3339.
	id := test_utils.SeedUser(t, db, "bob")

	found, err := repo.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bob", found.Username)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestUserRepoImpl_GetUnknownUser(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewUserRepo(db)

	_, err := repo.GetUser(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
