package impl

import (
	"context"
	"testing"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	mockRepo "pantry/internal/mocks/repository"
	mockSvc "pantry/internal/mocks/service"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recipeServiceFixtures holds all test dependencies for recipe service tests.
type recipeServiceFixtures struct {
	service    usecase.RecipeUsecase
	recipeRepo *mockRepo.MockRecipeRepository
	qrcode     *mockSvc.MockQRCodeService
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	service := NewRecipeService(RecipeServiceParams{
		RecipeRepo: recipeRepo,
		QRCode:     qrcode,
		Logger:     newDiscardLogger(),
	})

	return recipeServiceFixtures{
		service:    service,
		recipeRepo: recipeRepo,
		qrcode:     qrcode,
	}
}

func TestRecipeService_Create_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	authorID := uuid.New()
	input := &usecase.CreateRecipeInput{
		Title:        "Tomato Soup",
		Description:  "A simple soup",
		Category:     "soup",
		Ingredients:  []string{"tomatoes", "salt"},
		Instructions: []string{"chop", "simmer"},
		PrepTime:     10,
		CookTime:     25,
		AuthorID:     authorID,
	}

	fx.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(ctx context.Context, recipe *entity.Recipe) {
			assert.Equal(t, authorID, recipe.AuthorID)
			recipe.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Title, output.Title)
	assert.Equal(t, authorID, output.AuthorID)
	assert.NotEqual(t, uuid.Nil, output.ID)
}

func TestRecipeService_Create_RepoFailure(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	fx.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Return(errors.New("insert failed"))

	output, err := fx.service.Create(ctx, &usecase.CreateRecipeInput{
		Title:        "Tomato Soup",
		Ingredients:  []string{"tomatoes"},
		Instructions: []string{"simmer"},
		AuthorID:     uuid.New(),
	})

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestRecipeService_List(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	first := newTestRecipe(uuid.New())
	second := newTestRecipe(uuid.New())
	second.Title = "Lentil Curry"

	fx.recipeRepo.EXPECT().ListAll(ctx).Return([]*entity.Recipe{first, second}, nil)

	outputs, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, first.Title, outputs[0].Title)
	assert.Equal(t, second.Title, outputs[1].Title)
}

func TestRecipeService_List_Empty(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	fx.recipeRepo.EXPECT().ListAll(ctx).Return([]*entity.Recipe{}, nil)

	outputs, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestRecipeService_GetByID_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := newTestRecipe(uuid.New())

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)

	output, err := fx.service.GetByID(ctx, recipe.ID)

	require.NoError(t, err)
	assert.Equal(t, recipe.ID, output.ID)
	assert.Equal(t, recipe.Ingredients, output.Ingredients)
}

func TestRecipeService_GetByID_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecipeNotFound)

	output, err := fx.service.GetByID(ctx, id)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_Update_Author(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	author := newTestUser()
	recipe := newTestRecipe(author.ID)
	input := &usecase.UpdateRecipeInput{
		Title:        "Roasted Tomato Soup",
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
	}

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil).Once()

	fx.recipeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(ctx context.Context, updated *entity.Recipe) {
			assert.Equal(t, recipe.ID, updated.ID)
			assert.Equal(t, "Roasted Tomato Soup", updated.Title)
			assert.Equal(t, uuid.Nil, updated.AuthorID)
		}).
		Return(nil)

	renamed := *recipe
	renamed.Title = "Roasted Tomato Soup"
	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(&renamed, nil).Once()

	output, err := fx.service.Update(ctx, recipe.ID, ownerIdentity(author), input)

	require.NoError(t, err)
	assert.Equal(t, "Roasted Tomato Soup", output.Title)
	assert.Equal(t, author.ID, output.AuthorID)
}

func TestRecipeService_Update_Admin(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := newTestRecipe(uuid.New())

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)
	fx.recipeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Recipe")).
		Return(nil)

	output, err := fx.service.Update(ctx, recipe.ID, adminIdentity(), &usecase.UpdateRecipeInput{
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
	})

	require.NoError(t, err)
	assert.Equal(t, recipe.ID, output.ID)
}

func TestRecipeService_Update_Stranger(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := newTestRecipe(uuid.New())

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)

	output, err := fx.service.Update(ctx, recipe.ID, strangerIdentity(), &usecase.UpdateRecipeInput{})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestRecipeService_Update_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecipeNotFound)

	output, err := fx.service.Update(ctx, id, adminIdentity(), &usecase.UpdateRecipeInput{})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_Delete_Author(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	author := newTestUser()
	recipe := newTestRecipe(author.ID)

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)
	fx.recipeRepo.EXPECT().Delete(ctx, recipe.ID).Return(nil)

	err := fx.service.Delete(ctx, recipe.ID, ownerIdentity(author))

	assert.NoError(t, err)
}

func TestRecipeService_Delete_Stranger(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := newTestRecipe(uuid.New())

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)

	err := fx.service.Delete(ctx, recipe.ID, strangerIdentity())

	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestRecipeService_ShareQR_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := newTestRecipe(uuid.New())
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)
	fx.qrcode.EXPECT().GenerateRecipeQR(recipe.ID).Return(png, nil)

	out, err := fx.service.ShareQR(ctx, recipe.ID)

	require.NoError(t, err)
	assert.Equal(t, png, out)
}

func TestRecipeService_ShareQR_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecipeNotFound)

	out, err := fx.service.ShareQR(ctx, id)

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}
