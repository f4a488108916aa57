package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack/internal/utils"
)

var ErrSessionInvalid = errors.New("session is invalid or expired")

type Service interface {
	Create(ctx context.Context, userId int) (Session, error)
	// Validate resolves a token to the owning user id. Expired sessions are
	// removed on sight and reported as invalid.
	Validate(ctx context.Context, token string) (int, error)
	Delete(ctx context.Context, token string) error
}

type ServiceImpl struct {
	repo  Repo
	ttl   time.Duration
	clock utils.Clock
}

func NewService(repo Repo, ttl time.Duration) *ServiceImpl {
	return &ServiceImpl{repo: repo, ttl: ttl, clock: &utils.SystemClock{}}
}

func (s *ServiceImpl) Create(ctx context.Context, userId int) (Session, error) {
	token, err := generateToken()
	if err != nil {
		return Session{}, fmt.Errorf("failed to generate session token: %w", err)
	}
	session := Session{
		Token:     token,
		UserId:    userId,
		ExpiresAt: s.clock.Now().Add(s.ttl),
	}
	if err := s.repo.Store(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *ServiceImpl) Validate(ctx context.Context, token string) (int, error) {
	session, err := s.repo.Find(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		return 0, ErrSessionInvalid
	} else if err != nil {
		return 0, err
	}
	if session.ExpiredAt(s.clock.Now()) {
		_ = s.repo.Delete(ctx, token)
		return 0, ErrSessionInvalid
	}
	return session.UserId, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}

func generateToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
