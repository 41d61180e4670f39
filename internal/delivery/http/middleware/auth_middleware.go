package middleware

import (
	"strings"

	"taskward/internal/domain/errors"
	"taskward/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key carrying the authenticated user.
const ContextKeyUserID = "userID"

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid bearer token and stores the
// token's user ID on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.ErrUnauthorized.WrapMessage("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return errors.ErrInvalidToken.WrapMessage("token validation failed")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}
