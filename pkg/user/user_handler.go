package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fintrack/fintrack/internal/rest"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Uid      string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

type RegistrationDTO struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body RegistrationDTO true "Registration"
// @Success 201 {object} UserDTO
// @Failure 422 {object} rest.ValidationErrorResponse "Invalid registration data"
// @Router /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new user")

	var dto RegistrationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	registration := Registration{
		Username:        dto.Username,
		Email:           dto.Email,
		Password:        dto.Password,
		PasswordConfirm: dto.PasswordConfirm,
	}
	if fields := registration.Validate(); fields != nil {
		rest.WriteValidationError(w, fields)
		return
	}

	created, err := h.userService.Register(r.Context(), registration)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			rest.WriteValidationError(w, map[string]string{"username": "Username is already taken"})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, userToDTO(created))
}

// CurrentUser godoc
// @Summary Get current user
// @Tags User
// @Produce json
// @Success 200 {object} UserDTO
// @Failure 401 {object} rest.ErrorResponse "Not authenticated"
// @Router /api/user/current [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	log.Trace("Getting current user")

	currentUser, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrNoUser) {
			rest.WriteError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rest.WriteJSON(w, http.StatusOK, userToDTO(currentUser))
}

// DeleteCurrentUser godoc
// @Summary Delete the current account and everything it owns
// @Tags User
// @Success 204
// @Router /api/user/current [delete]
func (h *Handler) DeleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteCurrentUser(r.Context()); err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrNoUser) {
			rest.WriteError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func userToDTO(user User) UserDTO {
	return UserDTO{
		Uid:      user.Uid,
		Username: user.Username,
		Email:    user.Email,
	}
}
