package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pantry/internal/domain/entity"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts the token claims back into the domain identity context.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     entity.Role(c.Role),
	}
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are ephemeral and never persisted; expiry forces a re-login, there is
// no refresh mechanism.
type TokenService interface {
	// Issue signs the identity's claims with the configured expiry.
	Issue(identity entity.Identity) (string, error)

	// Validate checks a token string and returns its claims. It fails when the
	// signature is invalid, the token is malformed, or it has expired.
	Validate(tokenString string) (*Claims, error)
}
