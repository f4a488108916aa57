package test_utils

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
)

// SeedUser inserts a user row directly and returns its id. Repository tests need a
// real owner because every owned table carries a foreign key to users.
func SeedUser(t *testing.T, db *sql.DB, username string) int {
	t.Helper()

	result, err := db.Exec(
		`INSERT INTO users (uid, username, email, password_hash) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), username, username+"@example.com", "not-a-real-hash",
	)
	if err != nil {
		t.Fatalf("Failed to seed user %q: %v", username, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read seeded user id: %v", err)
	}
	return int(id)
}
