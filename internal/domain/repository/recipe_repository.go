package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is a domain-specific error returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// FindByID retrieves a single recipe by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// ListAll retrieves every recipe, newest first.
	ListAll(ctx context.Context) ([]*entity.Recipe, error)

	// Create persists a new recipe entity to the storage.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update modifies an existing recipe entity in the storage.
	// AuthorID is never touched by an update.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe row permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
