package impl

import (
	"context"
	"log/slog"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	recipeRepo repository.RecipeRepository
	qrcode     service.QRCodeService
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo: params.RecipeRepo,
		qrcode:     params.QRCode,
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new recipe with the supplied fields verbatim.
func (srv *recipeService) Create(ctx context.Context, input *usecase.CreateRecipeInput) (*usecase.RecipeOutput, error) {
	recipe := &entity.Recipe{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		ImageURL:     input.ImageURL,
		AuthorID:     input.AuthorID,
	}

	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		srv.log(ctx).Error("Failed to create recipe", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Debug("Recipe created", slog.Any("recipeID", recipe.ID), slog.Any("authorID", recipe.AuthorID))

	return usecase.NewRecipeOutput(recipe), nil
}

// List returns every recipe.
func (srv *recipeService) List(ctx context.Context) ([]*usecase.RecipeOutput, error) {
	recipes, err := srv.recipeRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	outputs := make([]*usecase.RecipeOutput, 0, len(recipes))
	for _, recipe := range recipes {
		outputs = append(outputs, usecase.NewRecipeOutput(recipe))
	}

	return outputs, nil
}

// GetByID returns a single recipe.
func (srv *recipeService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.RecipeOutput, error) {
	recipe, err := srv.loadRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewRecipeOutput(recipe), nil
}

// Update overwrites the mutable fields of a recipe. The caller must be the
// author or an admin; the author column itself is never touched.
func (srv *recipeService) Update(ctx context.Context, id uuid.UUID, caller entity.Identity, input *usecase.UpdateRecipeInput) (*usecase.RecipeOutput, error) {
	recipe, err := srv.loadRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.CanModify(recipe.AuthorID) {
		srv.log(ctx).Warn("Recipe update denied", slog.Any("recipeID", id), slog.Any("callerID", caller.UserID))

		return nil, domainerrors.ErrPermissionDenied.WrapMessage("caller may not update this recipe")
	}

	updated := &entity.Recipe{
		ID:           id,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		ImageURL:     input.ImageURL,
	}

	if err := srv.recipeRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("recipe vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update recipe")
	}

	fresh, err := srv.loadRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Recipe updated", slog.Any("recipeID", id))

	return usecase.NewRecipeOutput(fresh), nil
}

// Delete hard-deletes a recipe under the same ownership rule as Update.
func (srv *recipeService) Delete(ctx context.Context, id uuid.UUID, caller entity.Identity) error {
	recipe, err := srv.loadRecipe(ctx, id)
	if err != nil {
		return err
	}

	if !caller.CanModify(recipe.AuthorID) {
		srv.log(ctx).Warn("Recipe delete denied", slog.Any("recipeID", id), slog.Any("callerID", caller.UserID))

		return domainerrors.ErrPermissionDenied.WrapMessage("caller may not delete this recipe")
	}

	if err := srv.recipeRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete recipe")
	}

	srv.log(ctx).Info("Recipe deleted", slog.Any("recipeID", id), slog.Any("callerID", caller.UserID))

	return nil
}

// ShareQR renders a PNG QR code pointing at the recipe's public page.
func (srv *recipeService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.loadRecipe(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateRecipeQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render recipe QR code")
	}

	return png, nil
}

func (srv *recipeService) loadRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("recipe does not exist")
		}

		return nil, errors.Wrap(err, "failed to load recipe")
	}

	return recipe, nil
}
