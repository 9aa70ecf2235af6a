package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/potluckhq/potluck/internal/interfaces/http/handlers"
)

// PublicRouteConfig holds dependencies for share-link routes.
type PublicRouteConfig struct {
	PublicHandler   *handlers.PublicHandler
	AttendeeSession gin.HandlerFunc
}

// SetupPublicRoutes configures the attendee view. No login; the slug is the only key.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	public := engine.Group("/p/:slug")
	public.Use(cfg.AttendeeSession)
	{
		public.GET("", cfg.PublicHandler.GetPotluck)
		public.POST("/items/:item_id/claims", cfg.PublicHandler.ClaimItem)
		public.DELETE("/claims/:claim_id", cfg.PublicHandler.DeleteOwnClaim)
		public.POST("/categories/:category_id/items", cfg.PublicHandler.AddAttendeeItem)
	}
}
