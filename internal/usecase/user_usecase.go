// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Username           string   `json:"username" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Role               string   `json:"role"`
	Password           string   `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput carries the profile fields of a full-overwrite update.
// Fields absent from the request body arrive as zero values and are written
// as such; there are no partial-patch semantics.
type UpdateProfileInput struct {
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	DietaryPreferences []string `json:"dietary_preferences"`
}

// --- Output DTOs ---

// UserOutput is the public-safe projection of a user. It never carries the
// password hash.
type UserOutput struct {
	ID                 uuid.UUID `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	DietaryPreferences []string  `json:"dietary_preferences"`
	Role               string    `json:"role"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// LoginOutput returns the session token and the public user projection after
// a successful login.
type LoginOutput struct {
	Token string      `json:"token"`
	User  *UserOutput `json:"user"`
}

// NewUserOutput builds the public projection from a user entity.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:                 user.ID,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Username:           user.Username,
		Email:              user.Email,
		DietaryPreferences: user.DietaryPreferences,
		Role:               user.Role.String(),
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

// UserUsecase defines the interface for user-directory business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input *RegisterUserInput) (*UserOutput, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetProfile returns a profile, readable by its owner or an admin.
	GetProfile(ctx context.Context, id uuid.UUID, caller entity.Identity) (*UserOutput, error)

	// UpdateProfile overwrites the profile fields, writable by its owner or an admin.
	UpdateProfile(ctx context.Context, id uuid.UUID, caller entity.Identity, input *UpdateProfileInput) (*UserOutput, error)

	// DeleteProfile hard-deletes an account, allowed for its owner or an admin.
	DeleteProfile(ctx context.Context, id uuid.UUID, caller entity.Identity) error

	// ListUsers returns every account. The route is admin-gated.
	ListUsers(ctx context.Context) ([]*UserOutput, error)
}
