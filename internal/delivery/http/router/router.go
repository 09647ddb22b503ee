// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"raseed/internal/delivery/http/middleware"
	"raseed/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	RechargeHandler *handler.RechargeHandler
	UserHandler     *handler.UserHandler
	UploadHandler   *handler.UploadHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// Admin API routes, all behind JWT authentication
	api := e.Group("/api")
	api.Use(r.params.AuthMiddleware.Authenticate)
	{
		api.GET("/categories", r.params.CategoryHandler.List)
		api.POST("/categories", r.params.CategoryHandler.Create)
		api.GET("/categories/:id", r.params.CategoryHandler.Get)
		api.PUT("/categories/:id", r.params.CategoryHandler.Update)
		api.DELETE("/categories/:id", r.params.CategoryHandler.Delete)

		api.GET("/products", r.params.ProductHandler.List)
		api.GET("/products/filters", r.params.ProductHandler.ListFilterTags)
		api.POST("/products", r.params.ProductHandler.Create)
		api.GET("/products/:id", r.params.ProductHandler.Get)
		api.PUT("/products/:id", r.params.ProductHandler.Update)
		api.DELETE("/products/:id", r.params.ProductHandler.Delete)

		api.GET("/orders", r.params.OrderHandler.List)
		api.PATCH("/orders/:id", r.params.OrderHandler.Update)
		api.DELETE("/orders/:id", r.params.OrderHandler.Delete)

		api.POST("/recharge-codes", r.params.RechargeHandler.IssueBatch)
		api.GET("/recharge-codes", r.params.RechargeHandler.List)

		api.GET("/users", r.params.UserHandler.List)
		api.GET("/users/count", r.params.UserHandler.Count)
		api.PATCH("/users/:id/block", r.params.UserHandler.SetBlocked)

		api.POST("/upload", r.params.UploadHandler.Upload)
	}
}
