package session

import (
	"context"
)

type StubSessionRepository struct {
	data map[string]Session
}

func NewStubSessionRepository() *StubSessionRepository {
	return &StubSessionRepository{data: map[string]Session{}}
}

func (s *StubSessionRepository) Store(ctx context.Context, session Session) error {
	s.data[session.Token] = session
	return nil
}

func (s *StubSessionRepository) Find(ctx context.Context, token string) (Session, error) {
	session, ok := s.data[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *StubSessionRepository) Delete(ctx context.Context, token string) error {
	delete(s.data, token)
	return nil
}
