package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fintrack/fintrack/internal/rest"
	"github.com/fintrack/fintrack/pkg/session"
	"github.com/fintrack/fintrack/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// publicRoutes can be reached without a session.
var publicRoutes = map[string]bool{
	"/api/auth/register": true,
	"/api/auth/login":    true,
}

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies) {

	// Resolve the session cookie to a user and put it on the request context.
	// API routes other than the public ones require a valid session.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			if cookie, err := req.Cookie(session.CookieName); err == nil {
				userId, err := deps.SessionService.Validate(ctx, cookie.Value)
				if err == nil {
					u, err := deps.UserService.GetUser(ctx, userId)
					if err == nil {
						ctx = user.WithUser(ctx, u)
					} else if !errors.Is(err, user.ErrUserNotFound) {
						log.Errorf("failed to load session user: %v", err)
						http.Error(w, err.Error(), http.StatusInternalServerError)
						return
					}
				} else if !errors.Is(err, session.ErrSessionInvalid) {
					log.Errorf("failed to validate session: %v", err)
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
			}

			if requiresAuth(req.URL.Path) {
				if _, err := user.CurrentId(ctx); err != nil {
					rest.WriteError(w, http.StatusUnauthorized, "Authentication required")
					return
				}
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}

func requiresAuth(path string) bool {
	return strings.HasPrefix(path, "/api/") && !publicRoutes[path]
}
