package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/catering-service/internal/middleware"
)

// RegisterRoutes registers the back-office routes. Login is public; the
// rest sits behind JWT authentication.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/admin/login", h.Login)

	protected := rg.Group("/admin")
	protected.Use(middleware.JWTAuth(cfg.AuthService))
	{
		protected.GET("/menu", h.ListMenuItems)
		protected.PUT("/menu", h.UpsertMenuItem)
		protected.DELETE("/menu/:id", h.DeleteMenuItem)

		protected.GET("/ratios", h.GetRatios)
		protected.PUT("/ratios/hunger", h.UpdateHunger)
		protected.PUT("/ratios/:event", h.UpdateEventRatios)

		protected.GET("/settings", h.GetSettings)
		protected.PUT("/settings", h.UpdateSettings)

		protected.GET("/orders", h.ListOrders)
		protected.GET("/orders/:id", h.GetOrder)
		protected.GET("/logs", h.QueryLogs)
	}
}
