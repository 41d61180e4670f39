// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. It owns tasks and nothing else;
// the password hash is kept here for the login path but must never be
// serialized out of the service.
type User struct {
	ID           uuid.UUID // Store-assigned identifier.
	Name         string    // Display name, 3-30 characters.
	Email        string    // Login identifier, unique across all users.
	PasswordHash string    // bcrypt hash of the user's password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
