// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"orda/internal/delivery/http/middleware"
	"orda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	SessionHandler  *handler.SessionHandler
	CatalogHandler  *handler.CatalogHandler
	OrderHandler    *handler.OrderHandler
	CheckoutHandler *handler.CheckoutHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	sessionHandler  *handler.SessionHandler
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	checkoutHandler *handler.CheckoutHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		profileHandler:  params.ProfileHandler,
		sessionHandler:  params.SessionHandler,
		catalogHandler:  params.CatalogHandler,
		orderHandler:    params.OrderHandler,
		checkoutHandler: params.CheckoutHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Catalog routes are public so the menu can be browsed before login
	e.GET("/hotels", r.catalogHandler.ListHotels)
	e.GET("/hotels/:id/menu", r.catalogHandler.GetHotelMenu)

	// Processor redirect target, reference arrives as a query parameter
	e.GET("/payments/callback", r.checkoutHandler.PaymentCallback)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.profileHandler.GetProfile)
		userGroup.PATCH("/profile/username", r.profileHandler.UpdateUsername)
		userGroup.PUT("/profile/avatar", r.profileHandler.UploadAvatar)
		userGroup.DELETE("/profile/avatar", r.profileHandler.RemoveAvatar)
		userGroup.GET("/sessions", r.sessionHandler.ListSessions)
		userGroup.DELETE("/sessions/:id", r.sessionHandler.RevokeSession)
		userGroup.DELETE("/sessions", r.sessionHandler.RevokeAllSessions)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}

	// Checkout routes that require authentication
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.InitiateCheckout)
		checkoutGroup.GET("/:reference", r.checkoutHandler.GetCheckout)
		checkoutGroup.POST("/:reference/resolve", r.checkoutHandler.ResolveCheckout)
	}
}
