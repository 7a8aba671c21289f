// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homeplate/internal/delivery/http/middleware"
	"homeplate/internal/delivery/http/router/handler"
	"homeplate/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	VendorHandler  *handler.VendorHandler
	MealHandler    *handler.MealHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	vendorHandler  *handler.VendorHandler
	mealHandler    *handler.MealHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		vendorHandler:  params.VendorHandler,
		mealHandler:    params.MealHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.userHandler.SignUp)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Public catalog routes
	e.GET("/meals", r.mealHandler.BrowseMeals)
	e.GET("/categories", r.mealHandler.ListCategories)
	e.GET("/vendors/:id", r.vendorHandler.GetVendor)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile)
		userGroup.GET("/destination", r.userHandler.GetDestination)
	}

	// Customer order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListOwnOrders)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}

	// Vendor routes that require authentication and the "vendor" role
	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.Authenticate)
	vendorGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.POST("/profile", r.vendorHandler.CreateProfile)
		vendorGroup.GET("/profile", r.vendorHandler.GetOwnProfile)
		vendorGroup.PATCH("/profile", r.vendorHandler.UpdateProfile)
		vendorGroup.GET("/profile/qr", r.vendorHandler.StorefrontQR)

		vendorGroup.POST("/meals", r.mealHandler.AddMeal)
		vendorGroup.GET("/meals", r.mealHandler.ListOwnMeals)
		vendorGroup.PATCH("/meals/:id", r.mealHandler.UpdateMeal)
		vendorGroup.PUT("/meals/:id/availability", r.mealHandler.SetAvailability)
		vendorGroup.DELETE("/meals/:id", r.mealHandler.DeleteMeal)

		vendorGroup.GET("/orders", r.orderHandler.ListVendorOrders)
		vendorGroup.PUT("/orders/:id/status", r.orderHandler.UpdateStatus)
	}
}
