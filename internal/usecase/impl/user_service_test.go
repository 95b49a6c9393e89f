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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		FirstName:          "Test",
		LastName:           "User",
		Username:           "testuser",
		Email:              "test@example.com",
		DietaryPreferences: []string{"vegan"},
		Password:           "Password123!",
	}

	fx.userRepo.EXPECT().
		ExistsByUsernameOrEmail(ctx, input.Username, input.Email).
		Return(false, nil)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.Username)
	assert.Equal(t, input.Email, output.Email)
	assert.Equal(t, entity.RoleUser.String(), output.Role)
	assert.NotEqual(t, uuid.Nil, output.ID)
}

func TestUserService_Register_AdminRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "chief",
		Email:    "chief@example.com",
		Password: "Password123!",
		Role:     "admin",
	}

	fx.userRepo.EXPECT().
		ExistsByUsernameOrEmail(ctx, input.Username, input.Email).
		Return(false, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin.String(), output.Role)
}

func TestUserService_Register_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password123!",
		Role:     "superuser",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_DuplicateUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		ExistsByUsernameOrEmail(ctx, input.Username, input.Email).
		Return(true, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, user.Username).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		Issue(ownerIdentity(user)).
		Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: user.Username,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, user.Username, output.User.Username)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Login_PasswordMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, user.Username).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: user.Username,
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetProfile_Owner(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetProfile(ctx, user.ID, ownerIdentity(user))

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.ID)
}

func TestUserService_GetProfile_Admin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetProfile(ctx, user.ID, adminIdentity())

	require.NoError(t, err)
	assert.Equal(t, user.Username, output.Username)
}

func TestUserService_GetProfile_Stranger(t *testing.T) {
	fx := createTestUserService(t)

	user := newTestUser()

	output, err := fx.service.GetProfile(context.Background(), user.ID, strangerIdentity())

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser()
	input := &usecase.UpdateProfileInput{
		FirstName: "Renamed",
		LastName:  "User",
		Username:  user.Username,
		Email:     user.Email,
	}

	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, user.ID, updated.ID)
			assert.Equal(t, "Renamed", updated.FirstName)
		}).
		Return(nil)

	renamed := *user
	renamed.FirstName = "Renamed"
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(&renamed, nil)

	output, err := fx.service.UpdateProfile(ctx, user.ID, ownerIdentity(user), input)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", output.FirstName)
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUserNotFound)

	output, err := fx.service.UpdateProfile(ctx, user.ID, ownerIdentity(user), &usecase.UpdateProfileInput{})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile_Stranger(t *testing.T) {
	fx := createTestUserService(t)

	user := newTestUser()

	output, err := fx.service.UpdateProfile(context.Background(), user.ID, strangerIdentity(), &usecase.UpdateProfileInput{})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestUserService_DeleteProfile_Owner(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().Delete(ctx, user.ID).Return(nil)

	err := fx.service.DeleteProfile(ctx, user.ID, ownerIdentity(user))

	assert.NoError(t, err)
}

func TestUserService_DeleteProfile_Stranger(t *testing.T) {
	fx := createTestUserService(t)

	user := newTestUser()

	err := fx.service.DeleteProfile(context.Background(), user.ID, strangerIdentity())

	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	first := newTestUser()
	second := newTestUser()
	second.Username = "another"

	fx.userRepo.EXPECT().ListAll(ctx).Return([]*entity.User{first, second}, nil)

	outputs, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, first.Username, outputs[0].Username)
	assert.Equal(t, second.Username, outputs[1].Username)
}
