package user

import (
	"net/mail"
	"strings"
	"time"
)

type User struct {
	Id           int
	Uid          string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Registration is the typed input for creating a new account. Password arrives
// twice, the way the registration form submits it.
type Registration struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

const (
	maxUsernameLength = 150
	minPasswordLength = 8
)

// Validate checks the registration fields and returns field-level messages,
// or nil when the input is acceptable.
func (r Registration) Validate() map[string]string {
	fields := map[string]string{}

	username := strings.TrimSpace(r.Username)
	if username == "" {
		fields["username"] = "Username is required"
	} else if len(username) > maxUsernameLength {
		fields["username"] = "Username must be at most 150 characters"
	}

	if r.Email != "" {
		if _, err := mail.ParseAddress(r.Email); err != nil {
			fields["email"] = "Email address is not valid"
		}
	}

	if len(r.Password) < minPasswordLength {
		fields["password"] = "Password must be at least 8 characters"
	} else if r.Password != r.PasswordConfirm {
		fields["passwordConfirm"] = "Passwords do not match"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
