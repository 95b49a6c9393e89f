package handler

import (
	"context"
	"net/http"
	"testing"

	"pantry/internal/domain/entity"
	mockRepo "pantry/internal/mocks/repository"
	mockSvc "pantry/internal/mocks/service"
	"pantry/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecipeHandler_Update_EmptyBody(t *testing.T) {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	service := impl.NewRecipeService(impl.RecipeServiceParams{
		RecipeRepo: recipeRepo,
		QRCode:     mockSvc.NewMockQRCodeService(t),
		Logger:     newDiscardLogger(),
	})
	h := NewRecipeHandler(service, newDiscardLogger())

	authorID := uuid.New()
	recipe := &entity.Recipe{
		ID:           uuid.New(),
		Title:        "Tomato Soup",
		Ingredients:  []string{"tomatoes"},
		Instructions: []string{"simmer"},
		AuthorID:     authorID,
	}

	recipeRepo.EXPECT().FindByID(mock.Anything, recipe.ID).Return(recipe, nil)
	recipeRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Recipe")).
		Run(func(ctx context.Context, updated *entity.Recipe) {
			assert.Equal(t, recipe.ID, updated.ID)
			assert.Empty(t, updated.Title)
			assert.Empty(t, updated.Ingredients)
			assert.Empty(t, updated.Instructions)
		}).
		Return(nil)

	c, rec := newUpdateContext(t, "/api/recipes/"+recipe.ID.String(), recipe.ID.String(), entity.Identity{
		UserID:   authorID,
		Username: "author",
		Role:     entity.RoleUser,
	})

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
