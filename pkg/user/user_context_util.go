package user

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

// UserKey is the context key under which the middleware stores the
// authenticated user.
const UserKey contextKey = "user"

// ErrNoUser is returned when the context carries no authenticated user.
var ErrNoUser = errors.New("no authenticated user in context")

// CurrentUser returns the authenticated user attached to the context by the
// session middleware.
func CurrentUser(ctx context.Context) (User, error) {
	u, ok := ctx.Value(UserKey).(User)
	if !ok {
		log.Trace("no user in request context")
		return User{}, ErrNoUser
	}
	return u, nil
}

// CurrentId returns the authenticated user's id. Services use it to scope
// every store access to the owner.
func CurrentId(ctx context.Context) (int, error) {
	u, err := CurrentUser(ctx)
	if err != nil {
		return 0, err
	}
	return u.Id, nil
}

// WithUser attaches the user to the context for downstream services.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}
