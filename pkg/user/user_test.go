package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistration_Validate(t *testing.T) {
	valid := Registration{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "correct-horse",
		PasswordConfirm: "correct-horse",
	}

	tests := []struct {
		name      string
		modify    func(r *Registration)
		wantField string
	}{
		{
			name:   "valid registration passes",
			modify: func(r *Registration) {},
		},
		{
			name:   "email is optional",
			modify: func(r *Registration) { r.Email = "" },
		},
		{
			name:      "missing username",
			modify:    func(r *Registration) { r.Username = "  " },
			wantField: "username",
		},
		{
			name:      "malformed email",
			modify:    func(r *Registration) { r.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "short password",
			modify:    func(r *Registration) { r.Password = "short"; r.PasswordConfirm = "short" },
			wantField: "password",
		},
		{
			name:      "password confirmation mismatch",
			modify:    func(r *Registration) { r.PasswordConfirm = "different-horse" },
			wantField: "passwordConfirm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registration := valid
			tt.modify(&registration)
			fields := registration.Validate()
			if tt.wantField == "" {
				assert.Nil(t, fields)
			} else {
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}
