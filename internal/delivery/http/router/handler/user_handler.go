// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/delivery/http/response"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ListUsers handles the admin-only directory listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	outputs, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "Users retrieved successfully")
}

// GetProfile handles the request to read a single profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	id, caller, err := profileRequest(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetProfile(c.Request().Context(), id, caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved successfully")
}

// UpdateProfile handles the full-overwrite profile update request.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, caller, err := profileRequest(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if input == nil {
		// The binder skips empty bodies. An empty body is still a valid
		// full overwrite: every field is written as its zero value.
		input = &usecase.UpdateProfileInput{}
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), id, caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated successfully")
}

// DeleteProfile handles the account deletion request.
func (h *UserHandler) DeleteProfile(c echo.Context) error {
	id, caller, err := profileRequest(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), id, caller); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "User deleted successfully")
}

// profileRequest extracts the path ID and the authenticated caller shared by
// the profile handlers.
func profileRequest(c echo.Context) (uuid.UUID, entity.Identity, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, entity.Identity{}, domainerrors.ErrValidationFailed.WrapMessage("invalid user id in path")
	}

	caller, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return uuid.Nil, entity.Identity{}, domainerrors.ErrTokenMissing.WrapMessage("identity missing from context")
	}

	return id, caller, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
