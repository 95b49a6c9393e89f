package auth

import (
	"testing"
	"time"

	"pantry/config"
	"pantry/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "test_secret_key_very_long_for_testing"
	cfg.Auth.TokenTTL = ttl

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, svc)

	identity := entity.Identity{
		UserID:   uuid.New(),
		Username: "alice",
		Role:     entity.RoleAdmin,
	}

	token, err := svc.Issue(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, identity, claims.Identity())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Issue with a TTL already in the past; validation must reject it.
	svc, err := NewJWTService(newTestConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(entity.Identity{UserID: uuid.New(), Username: "bob", Role: entity.RoleUser})
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	other := &config.Config{}
	other.Auth.Secret = "a_completely_different_secret"
	other.Auth.TokenTTL = time.Hour
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := issuer.Issue(entity.Identity{UserID: uuid.New(), Username: "carol", Role: entity.RoleUser})
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.TokenTTL = time.Hour

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
