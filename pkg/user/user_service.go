package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrInvalidCredential = errors.New("invalid username or password")
)

type Service interface {
	Register(ctx context.Context, registration Registration) (User, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
	GetCurrentUser(ctx context.Context) (User, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	DeleteCurrentUser(ctx context.Context) error
}

type UserServiceImpl struct {
	repo  Repo
	clock utils.Clock
}

func NewUserService(repo Repo) *UserServiceImpl {
	return &UserServiceImpl{repo: repo, clock: &utils.SystemClock{}}
}

// Register creates a new account. The caller is expected to have validated the
// registration fields already; username uniqueness is checked here.
func (u *UserServiceImpl) Register(ctx context.Context, registration Registration) (User, error) {
	username := strings.TrimSpace(registration.Username)

	available, err := u.repo.IsUsernameAvailable(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("failed to check username availability: %w", err)
	}
	if !available {
		return User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Uid:          uuid.NewString(),
		Username:     username,
		Email:        strings.TrimSpace(registration.Email),
		PasswordHash: string(hash),
		CreatedAt:    u.clock.Now(),
	}
	id, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.Id = id
	log.Infof("registered new user %s", user.Uid)
	return user, nil
}

// Authenticate verifies the username/password pair. A missing user and a wrong
// password are indistinguishable to the caller.
func (u *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (User, error) {
	user, err := u.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return User{}, ErrInvalidCredential
	} else if err != nil {
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredential
	}
	return user, nil
}

func (u *UserServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.GetUser(ctx, userId)
}

func (u *UserServiceImpl) GetUser(ctx context.Context, id int) (User, error) {
	return u.repo.GetUser(ctx, id)
}

func (u *UserServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return u.repo.GetUserByUid(ctx, uid)
}

// DeleteCurrentUser removes the account; the store cascades the delete to every
// owned category, expense, income, budget, and session.
func (u *UserServiceImpl) DeleteCurrentUser(ctx context.Context) error {
	userId, err := CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return u.repo.DeleteUser(ctx, userId)
}
