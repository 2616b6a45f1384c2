// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gearshop/internal/delivery/http/middleware"
	"gearshop/internal/delivery/http/router/handler"
	"gearshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	SettingsHandler *handler.SettingsHandler
	AdminHandler    *handler.AdminHandler
	MediaHandler    *handler.MediaHandler
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
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.SessionHandler.Register)
		authGroup.POST("/password-reset", p.SessionHandler.PasswordReset)
	}
	e.GET("/me", p.SessionHandler.Me, p.AuthMiddleware.Authenticate)

	// Public storefront routes
	e.GET("/products", p.CatalogHandler.ListProducts)
	e.GET("/products/:id", p.CatalogHandler.GetProduct)
	e.GET("/categories", p.CatalogHandler.ListCategories)
	e.GET("/home", p.CatalogHandler.HomeContent)
	e.GET("/settings/payment", p.SettingsHandler.Get)

	// Cart routes are public; the cart key is an opaque caller-chosen
	// identifier, anonymous carts included.
	cartGroup := e.Group("/cart/:key")
	{
		cartGroup.GET("", p.CartHandler.Get)
		cartGroup.POST("/items", p.CartHandler.AddItem)
		cartGroup.PUT("/items/:productId", p.CartHandler.SetQuantity)
		cartGroup.DELETE("/items/:productId", p.CartHandler.RemoveItem)
		cartGroup.DELETE("", p.CartHandler.Clear)
	}

	e.POST("/checkout", p.CheckoutHandler.Checkout)

	// Admin routes require authentication and at least the "admin" role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/products", p.AdminHandler.ListProducts)
		adminGroup.POST("/products", p.AdminHandler.CreateProduct)
		adminGroup.GET("/products/:id", p.AdminHandler.GetProduct)
		adminGroup.PUT("/products/:id", p.AdminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", p.AdminHandler.DeleteProduct)

		adminGroup.PUT("/settings/payment", p.SettingsHandler.Update)

		adminGroup.POST("/home/hero-slides", p.AdminHandler.SaveHeroSlide)
		adminGroup.DELETE("/home/hero-slides/:id", p.AdminHandler.DeleteHeroSlide)
		adminGroup.POST("/home/highlights", p.AdminHandler.SaveHighlight)
		adminGroup.DELETE("/home/highlights/:id", p.AdminHandler.DeleteHighlight)
		adminGroup.POST("/home/brand-story", p.AdminHandler.SaveBrandStory)
		adminGroup.DELETE("/home/brand-story/:id", p.AdminHandler.DeleteBrandStory)

		adminGroup.POST("/media", p.MediaHandler.Upload)

		adminGroup.GET("/users", p.AdminHandler.ListUsers)
		adminGroup.GET("/orders", p.AdminHandler.ListOrders)
	}

	// Routes that additionally require the "superadmin" role.
	superGroup := e.Group("/admin")
	superGroup.Use(p.AuthMiddleware.Authenticate)
	superGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleSuperAdmin))
	{
		superGroup.PUT("/users/:uid/role", p.AdminHandler.SetUserRole)
		superGroup.PUT("/orders/:id/status", p.AdminHandler.SetOrderStatus)
	}
}
