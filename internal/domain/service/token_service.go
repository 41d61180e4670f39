package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskward/internal/domain/entity"
)

// Claims defines the identity fields embedded in a signed token.
// The subject claim carries the owner's id; email and name ride along so
// clients can render the session without an extra lookup.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed identity tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed token embedding the user's identity.
	Generate(user *entity.User) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns the decoded claims. Any failure is terminal for the request.
	Validate(tokenString string) (*Claims, error)
}
