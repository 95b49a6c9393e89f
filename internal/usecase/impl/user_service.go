// Package impl contains the implementation of the application's business logic.
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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The duplicate pre-check and the insert are
// two separate statements; concurrent identical registrations can race past
// the check, in which case the unique constraints still surface a conflict.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	role := entity.RoleUser
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + input.Role)
		}
	}

	exists, err := srv.userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		srv.log(ctx).Error("Failed duplicate pre-check during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check for existing user")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already taken")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Username:           input.Username,
		Email:              input.Email,
		DietaryPreferences: input.DietaryPreferences,
		Role:               role,
		PasswordHash:       hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return usecase.NewUserOutput(newUser), nil
}

// Login verifies the credentials and issues a session token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt comparison is CPU-bound and reports only match or mismatch.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(entity.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  usecase.NewUserOutput(user),
	}, nil
}

// GetProfile returns a profile, readable by its owner or an admin.
func (srv *userService) GetProfile(ctx context.Context, id uuid.UUID, caller entity.Identity) (*usecase.UserOutput, error) {
	if !caller.CanModify(id) {
		return nil, domainerrors.ErrPermissionDenied.WrapMessage("caller may not view this profile")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile does not exist")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return usecase.NewUserOutput(user), nil
}

// UpdateProfile overwrites the profile fields unconditionally. Fields missing
// from the request are written as zero values; there is no partial patch.
func (srv *userService) UpdateProfile(ctx context.Context, id uuid.UUID, caller entity.Identity, input *usecase.UpdateProfileInput) (*usecase.UserOutput, error) {
	if !caller.CanModify(id) {
		return nil, domainerrors.ErrPermissionDenied.WrapMessage("caller may not update this profile")
	}

	updated := &entity.User{
		ID:                 id,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Username:           input.Username,
		Email:              input.Email,
		DietaryPreferences: input.DietaryPreferences,
	}

	if err := srv.userRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile does not exist")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload profile after update")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", id))

	return usecase.NewUserOutput(user), nil
}

// DeleteProfile hard-deletes an account, allowed for its owner or an admin.
func (srv *userService) DeleteProfile(ctx context.Context, id uuid.UUID, caller entity.Identity) error {
	if !caller.CanModify(id) {
		return domainerrors.ErrPermissionDenied.WrapMessage("caller may not delete this profile")
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	srv.log(ctx).Info("Profile deleted", slog.Any("userID", id), slog.Any("callerID", caller.UserID))

	return nil
}

// ListUsers returns every account. The HTTP route is admin-gated by the
// RequireRole middleware.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, usecase.NewUserOutput(user))
	}

	return outputs, nil
}
