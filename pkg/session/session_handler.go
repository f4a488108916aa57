package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fintrack/fintrack/internal/rest"
	"github.com/fintrack/fintrack/pkg/user"
	log "github.com/sirupsen/logrus"
)

type CredentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Handler struct {
	sessionService Service
	userService    user.Service
	secureCookie   bool
}

func NewHandler(sessionService Service, userService user.Service, secureCookie bool) *Handler {
	return &Handler{
		sessionService: sessionService,
		userService:    userService,
		secureCookie:   secureCookie,
	}
}

// Login godoc
// @Summary Log in with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsDTO true "Credentials"
// @Success 200 {object} user.UserDTO
// @Failure 401 {object} rest.ErrorResponse "Invalid username or password"
// @Router /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		rest.WriteError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	authenticated, err := h.userService.Authenticate(r.Context(), credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredential) {
			rest.WriteError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	session, err := h.sessionService.Create(r.Context(), authenticated.Id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	rest.WriteJSON(w, http.StatusOK, struct {
		Uid      string `json:"uid"`
		Username string `json:"username"`
	}{Uid: authenticated.Uid, Username: authenticated.Username})
}

// Logout godoc
// @Summary Log out and invalidate the session
// @Tags Auth
// @Success 204
// @Router /api/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		if err := h.sessionService.Delete(r.Context(), cookie.Value); err != nil {
			log.Warnf("failed to delete session on logout: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
