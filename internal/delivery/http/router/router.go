// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/router/handler"
	"pantry/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// User directory routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)

		// The directory listing is admin only.
		userGroup.GET("/all", r.userHandler.ListUsers,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin.String()))

		// Profile routes require a valid token; owner-or-admin checks live in
		// the usecase layer.
		userGroup.GET("/:id", r.userHandler.GetProfile, r.authMiddleware.Authenticate)
		userGroup.PUT("/:id", r.userHandler.UpdateProfile, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:id", r.userHandler.DeleteProfile, r.authMiddleware.Authenticate)
	}

	// Recipe catalog routes. Reads are public, writes require a token.
	recipeGroup := api.Group("/recipes")
	{
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.GET("/:id", r.recipeHandler.GetByID)
		recipeGroup.GET("/:id/qr", r.recipeHandler.ShareQR)

		recipeGroup.POST("", r.recipeHandler.Create, r.authMiddleware.Authenticate)
		recipeGroup.PUT("/:id", r.recipeHandler.Update, r.authMiddleware.Authenticate)
		recipeGroup.DELETE("/:id", r.recipeHandler.Delete, r.authMiddleware.Authenticate)
	}
}
