package postgres

import (
	"context"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// FindByID retrieves a single recipe by its unique ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := repo.db.WithContext(ctx).First(&recipeM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// ListAll retrieves every recipe, newest first.
func (repo *recipeRepository) ListAll(ctx context.Context) ([]*entity.Recipe, error) {
	var models []model.RecipeModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, toRecipeDomain(&models[i]))
	}

	return recipes, nil
}

// Create persists a new recipe entity to the database.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRecipeCreationFailed.WrapMessage("author does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRecipeCreationFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// Update overwrites the mutable columns of an existing recipe.
// AuthorID is deliberately excluded; ownership never changes.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	updates := map[string]any{
		"title":        recipe.Title,
		"description":  recipe.Description,
		"category":     recipe.Category,
		"ingredients":  model.StringList(recipe.Ingredients),
		"instructions": model.StringList(recipe.Instructions),
		"prep_time":    recipe.PrepTime,
		"cook_time":    recipe.CookTime,
		"image_url":    recipe.ImageURL,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipe.ID).
		Updates(updates)
	if err := result.Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRecipeUpdateFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Delete permanently removes a recipe row.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.RecipeModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete recipe")
	}

	return nil
}

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Category:     data.Category,
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		PrepTime:     data.PrepTime,
		CookTime:     data.CookTime,
		ImageURL:     data.ImageURL,
		AuthorID:     data.AuthorID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel for persistence.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Category:     data.Category,
		Ingredients:  model.StringList(data.Ingredients),
		Instructions: model.StringList(data.Instructions),
		PrepTime:     data.PrepTime,
		CookTime:     data.CookTime,
		ImageURL:     data.ImageURL,
		AuthorID:     data.AuthorID,
	}
}
