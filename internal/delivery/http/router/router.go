// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	StoreHandler   *handler.StoreHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	GameHandler    *handler.GameHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	storeHandler   *handler.StoreHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	gameHandler    *handler.GameHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		storeHandler:   params.StoreHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		gameHandler:    params.GameHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Gateway webhooks are authenticated by signature, not by JWT.
	e.POST("/orders/webhook", r.orderHandler.StripeWebhook)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Routes for the authenticated user
	userGroup := e.Group("/users/me")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.GetProfile)
		userGroup.GET("/orders", r.orderHandler.ListMyOrders)
	}

	// Public catalogue routes plus vendor-only management
	storeGroup := e.Group("/stores")
	{
		storeGroup.GET("", r.storeHandler.ListStores)
		storeGroup.GET("/:id", r.storeHandler.GetStore)
		storeGroup.GET("/:id/products", r.productHandler.ListStoreProducts)
	}

	vendorStoreGroup := e.Group("/stores")
	vendorStoreGroup.Use(r.authMiddleware.Authenticate)
	vendorStoreGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorStoreGroup.POST("", r.storeHandler.CreateStore)
		vendorStoreGroup.PUT("/:id", r.storeHandler.UpdateStore)
		vendorStoreGroup.POST("/:id/products", r.productHandler.CreateProduct)
		vendorStoreGroup.GET("/:id/orders", r.orderHandler.ListStoreOrders)
	}

	productGroup := e.Group("/products")
	{
		productGroup.GET("/:id", r.productHandler.GetProduct)
	}

	vendorProductGroup := e.Group("/products")
	vendorProductGroup.Use(r.authMiddleware.Authenticate)
	vendorProductGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorProductGroup.PUT("/:id", r.productHandler.UpdateProduct)
	}

	// Order lifecycle
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	checkoutGroup := e.Group("/orders")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	checkoutGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		checkoutGroup.POST("", r.orderHandler.CreateOrder)
	}

	fulfilmentGroup := e.Group("/orders")
	fulfilmentGroup.Use(r.authMiddleware.Authenticate)
	fulfilmentGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		fulfilmentGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	// Engagement features
	e.GET("/leaderboard", r.gameHandler.GetLeaderboard)

	gameGroup := e.Group("/game")
	gameGroup.Use(r.authMiddleware.Authenticate)
	{
		gameGroup.POST("/play", r.gameHandler.PlayDaily)
		gameGroup.POST("/reward", r.gameHandler.GrantReward)
		gameGroup.GET("/achievements", r.gameHandler.GetAchievements)
	}

	referralGroup := e.Group("/referrals/me")
	referralGroup.Use(r.authMiddleware.Authenticate)
	{
		referralGroup.GET("", r.gameHandler.GetReferralStats)
		referralGroup.GET("/qrcode", r.gameHandler.GetReferralQRCode)
	}
}
