package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	mockRepo "pantry/internal/mocks/repository"
	mockSvc "pantry/internal/mocks/service"
	"pantry/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUpdateContext(t *testing.T, path, id string, identity entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	deliverycontext.SetIdentity(c, identity)

	return c, rec
}

func TestUserHandler_UpdateProfile_EmptyBody(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       mockSvc.NewMockPasswordHasher(t),
		TokenService: mockSvc.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})
	h := NewUserHandler(service, newDiscardLogger())

	userID := uuid.New()

	userRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, userID, updated.ID)
			assert.Empty(t, updated.Username)
			assert.Empty(t, updated.Email)
			assert.Empty(t, updated.DietaryPreferences)
		}).
		Return(nil)
	userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

	c, rec := newUpdateContext(t, "/api/users/"+userID.String(), userID.String(), entity.Identity{
		UserID:   userID,
		Username: "testuser",
		Role:     entity.RoleUser,
	})

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
