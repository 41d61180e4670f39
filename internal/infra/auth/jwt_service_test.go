package auth

import (
	"testing"
	"time"

	"taskward/config"
	"taskward/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Secret: "test_secret_key_very_long_for_testing",
		TTL:    ttl,
	}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	user := &entity.User{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: "test@example.com",
	}

	token, err := jwtService.Generate(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig(time.Hour))
	require.NoError(t, err)

	verifier, err := NewJWTService(&config.Config{JWT: config.JWTConfig{Secret: "a_different_secret_entirely", TTL: time.Hour}})
	require.NoError(t, err)

	token, err := issuer.Generate(&entity.User{ID: uuid.New(), Email: "a@b.c"})
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// The constructor replaces non-positive TTLs with the default, so build
	// the expired case by backdating the service directly.
	svc := &jwtService{
		secret: "test_secret_key_very_long_for_testing",
		ttl:    -time.Minute,
	}

	token, err := svc.Generate(&entity.User{ID: uuid.New(), Email: "a@b.c"})
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}
