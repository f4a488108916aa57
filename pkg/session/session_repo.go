package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

type Repo interface {
	Store(ctx context.Context, session Session) error
	Find(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, session Session) error {
	query := `INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, session.Token, session.UserId, session.ExpiresAt.UTC().Format(time.RFC3339))
	if err != nil {
		log.Errorf("failed to store session: %v", err)
		return err
	}
	return nil
}

func (r *RepoImpl) Find(ctx context.Context, token string) (Session, error) {
	query := `SELECT token, user_id, expires_at FROM sessions WHERE token = ?`
	var session Session
	var expiresAt string
	err := r.db.QueryRowContext(ctx, query, token).Scan(&session.Token, &session.UserId, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	} else if err != nil {
		log.Errorf("failed to find session: %v", err)
		return Session{}, err
	}
	parsed, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		log.Errorf("could not parse session expiry: %v", err)
		return Session{}, err
	}
	session.ExpiresAt = parsed
	return session, nil
}

func (r *RepoImpl) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		log.Errorf("failed to delete session: %v", err)
	}
	return err
}
