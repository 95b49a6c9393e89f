package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/delivery/http/response"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the recipe creation request. The author is taken from the
// request body; the route itself only requires a valid token.
func (h *RecipeHandler) Create(c echo.Context) error {
	var input *usecase.CreateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Recipe created successfully")
}

// List handles the public catalog listing.
func (h *RecipeHandler) List(c echo.Context) error {
	outputs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "Recipes retrieved successfully")
}

// GetByID handles the public single-recipe read.
func (h *RecipeHandler) GetByID(c echo.Context) error {
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recipe retrieved successfully")
}

// Update handles the full-overwrite recipe update request.
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	caller, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing.WrapMessage("identity missing from context")
	}

	var input *usecase.UpdateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if input == nil {
		// The binder skips empty bodies. An empty body is still a valid
		// full overwrite: every field is written as its zero value.
		input = &usecase.UpdateRecipeInput{}
	}

	output, err := h.uc.Update(c.Request().Context(), id, caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Recipe updated successfully")
}

// Delete handles the recipe deletion request.
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	caller, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenMissing.WrapMessage("identity missing from context")
	}

	if err := h.uc.Delete(c.Request().Context(), id, caller); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Recipe deleted successfully")
}

// ShareQR renders the share QR code as a raw PNG rather than the JSON
// envelope.
func (h *RecipeHandler) ShareQR(c echo.Context) error {
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func recipeID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid recipe id in path")
	}

	return id, nil
}
