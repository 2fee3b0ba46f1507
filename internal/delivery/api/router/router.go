// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crave/config"
	"crave/internal/delivery/api/middleware"
	"crave/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	ProfileHandler *handler.ProfileHandler
	PaymentHandler *handler.PaymentHandler
	DeviceHandler  *handler.DeviceHandler
	AdminHandler   *handler.AdminHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	profileHandler *handler.ProfileHandler
	paymentHandler *handler.PaymentHandler
	deviceHandler  *handler.DeviceHandler
	adminHandler   *handler.AdminHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		profileHandler: params.ProfileHandler,
		paymentHandler: params.PaymentHandler,
		deviceHandler:  params.DeviceHandler,
		adminHandler:   params.AdminHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Storage != nil && r.config.Storage.ServeLocal {
		e.GET("/static/:bucket/*", r.mediaHandler.ServeImage)
	}

	signInLimiter := middleware.NewSignInRateLimiter(r.config)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.SignUp, signInLimiter)
		authGroup.POST("/login", r.authHandler.SignIn, signInLimiter)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Payment gateway callbacks authenticate by signature or verification, not by session
	paymentsGroup := e.Group("/payments")
	{
		paymentsGroup.POST("/webhook", r.paymentHandler.Webhook)
		paymentsGroup.GET("/callback", r.paymentHandler.Callback)
	}

	// Public storefront catalog
	catalogGroup := e.Group("/api/v1/catalog")
	{
		catalogGroup.GET("/home", r.catalogHandler.Home)
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/products/:id", r.catalogHandler.GetProduct)
		catalogGroup.GET("/categories", r.catalogHandler.ListCategories)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // Everything below the catalog requires a session

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	apiV1.GET("/profile", r.profileHandler.GetProfile)
	apiV1.PUT("/profile", r.profileHandler.UpsertProfile)

	apiV1.POST("/checkout", r.orderHandler.Checkout)

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.OrderQRCode)
		ordersGroup.POST("/:id/payment", r.orderHandler.InitiatePayment)
	}

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.RefreshToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	r.registerAdminRoutes(e, signInLimiter)
}

func (r *router) registerAdminRoutes(e *echo.Echo, signInLimiter echo.MiddlewareFunc) {
	e.POST("/admin/login", r.authHandler.AdminSignIn, signInLimiter)

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check the admin table
	{
		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)

		adminGroup.GET("/categories", r.adminHandler.ListCategories)
		adminGroup.POST("/categories", r.adminHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.adminHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.adminHandler.DeleteCategory)

		adminGroup.POST("/uploads", r.adminHandler.UploadImage)

		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.GET("/orders/:id", r.adminHandler.GetOrder)
		adminGroup.POST("/orders/scan", r.adminHandler.ScanReceipt)
		adminGroup.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
	}
}
