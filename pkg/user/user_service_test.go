package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupService() (*UserServiceImpl, context.Context) {
	return NewUserService(NewStubUserRepository()), context.Background()
}

func TestUserServiceImpl_Register(t *testing.T) {
	service, ctx := setupService()

	registration := Registration{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "correct-horse",
		PasswordConfirm: "correct-horse",
	}

	created, err := service.Register(ctx, registration)

	require.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.NotEmpty(t, created.Uid)
	assert.Equal(t, "alice", created.Username)
	// Password must be stored as a bcrypt hash, never in clear.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))
}

func TestUserServiceImpl_Register_DuplicateUsername(t *testing.T) {
	service, ctx := setupService()

	registration := Registration{Username: "alice", Password: "correct-horse", PasswordConfirm: "correct-horse"}
	_, err := service.Register(ctx, registration)
	require.NoError(t, err)

	_, err = service.Register(ctx, registration)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserServiceImpl_Authenticate(t *testing.T) {
	service, ctx := setupService()
	_, err := service.Register(ctx, Registration{Username: "alice", Password: "correct-horse", PasswordConfirm: "correct-horse"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		authenticated, err := service.Authenticate(ctx, "alice", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "alice", authenticated.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "alice", "wrong-horse")
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("unknown user looks the same as wrong password", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "bob", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})
}

func TestUserServiceImpl_DeleteCurrentUser(t *testing.T) {
	service, ctx := setupService()
	created, err := service.Register(ctx, Registration{Username: "alice", Password: "correct-horse", PasswordConfirm: "correct-horse"})
	require.NoError(t, err)

	ctx = WithUser(ctx, created)
	require.NoError(t, service.DeleteCurrentUser(ctx))

	_, err = service.GetUserByUid(ctx, created.Uid)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
