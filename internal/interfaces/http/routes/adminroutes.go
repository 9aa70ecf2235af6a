package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/potluckhq/potluck/internal/interfaces/http/handlers"
	"github.com/potluckhq/potluck/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for organizer routes.
type AdminRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AdminAuthMiddleware
	LoginLimiter   gin.HandlerFunc
}

// SetupAdminRoutes configures the admin login and every session-protected route.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")

	admin.POST("/login", cfg.LoginLimiter, cfg.AuthHandler.Login)

	protected := admin.Group("")
	protected.Use(cfg.AuthMiddleware.RequireAdmin(), middleware.CSRF())
	{
		protected.POST("/logout", cfg.AuthHandler.Logout)
		protected.GET("/dashboard", cfg.AdminHandler.Dashboard)

		protected.POST("/potlucks", cfg.AdminHandler.CreatePotluck)
		protected.GET("/potlucks/:slug", cfg.AdminHandler.GetPotluck)
		protected.PUT("/potlucks/:slug", cfg.AdminHandler.UpdatePotluck)
		protected.DELETE("/potlucks/:slug", cfg.AdminHandler.DeletePotluck)

		protected.POST("/potlucks/:slug/categories", cfg.AdminHandler.AddCategory)
		protected.PUT("/potlucks/:slug/categories/:category_id", cfg.AdminHandler.UpdateCategory)
		protected.DELETE("/potlucks/:slug/categories/:category_id", cfg.AdminHandler.DeleteCategory)
		protected.POST("/potlucks/:slug/categories/:category_id/items", cfg.AdminHandler.AddItem)

		protected.PUT("/potlucks/:slug/items/:item_id", cfg.AdminHandler.UpdateItem)
		protected.DELETE("/potlucks/:slug/items/:item_id", cfg.AdminHandler.DeleteItem)

		protected.PUT("/potlucks/:slug/claims/:claim_id", cfg.AdminHandler.UpdateClaim)
		protected.DELETE("/potlucks/:slug/claims/:claim_id", cfg.AdminHandler.DeleteClaim)
	}
}
