package usecase

import (
	"context"
	"time"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRecipeInput defines the data required to create a recipe. The author
// is taken from the request body, mirroring the public API contract; the
// route itself is authenticated.
type CreateRecipeInput struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Ingredients  []string  `json:"ingredients" validate:"required,min=1"`
	Instructions []string  `json:"instructions" validate:"required,min=1"`
	PrepTime     int       `json:"prep_time"`
	CookTime     int       `json:"cook_time"`
	ImageURL     string    `json:"image_url"`
	AuthorID     uuid.UUID `json:"author_id" validate:"required"`
}

// UpdateRecipeInput carries the mutable recipe fields of a full-overwrite
// update. AuthorID is not part of it; ownership is immutable.
type UpdateRecipeInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prep_time"`
	CookTime     int      `json:"cook_time"`
	ImageURL     string   `json:"image_url"`
}

// RecipeOutput is the full recipe row as returned to clients.
type RecipeOutput struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	PrepTime     int       `json:"prep_time"`
	CookTime     int       `json:"cook_time"`
	ImageURL     string    `json:"image_url"`
	AuthorID     uuid.UUID `json:"author_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewRecipeOutput builds the API projection from a recipe entity.
func NewRecipeOutput(recipe *entity.Recipe) *RecipeOutput {
	if recipe == nil {
		return nil
	}

	return &RecipeOutput{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Description:  recipe.Description,
		Category:     recipe.Category,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		PrepTime:     recipe.PrepTime,
		CookTime:     recipe.CookTime,
		ImageURL:     recipe.ImageURL,
		AuthorID:     recipe.AuthorID,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
}

// RecipeUsecase defines the interface for recipe-catalog business operations.
type RecipeUsecase interface {
	// Create persists a new recipe with the supplied fields verbatim.
	Create(ctx context.Context, input *CreateRecipeInput) (*RecipeOutput, error)

	// List returns every recipe, unauthenticated and unpaginated.
	List(ctx context.Context) ([]*RecipeOutput, error)

	// GetByID returns a single recipe.
	GetByID(ctx context.Context, id uuid.UUID) (*RecipeOutput, error)

	// Update overwrites the mutable fields, allowed for the author or an admin.
	Update(ctx context.Context, id uuid.UUID, caller entity.Identity, input *UpdateRecipeInput) (*RecipeOutput, error)

	// Delete hard-deletes a recipe, allowed for the author or an admin.
	Delete(ctx context.Context, id uuid.UUID, caller entity.Identity) error

	// ShareQR renders a PNG QR code pointing at the recipe's public page.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
