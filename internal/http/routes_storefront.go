package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the anonymous storefront routes.
func (h *StorefrontHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", h.ListMenu)
	rg.POST("/suggest", h.SuggestQuantity)

	cart := rg.Group("/cart/:session")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddToCart)
		cart.PUT("/items/:line", h.UpdateCartLine)
		cart.DELETE("/items/:line", h.RemoveCartLine)

		cart.PUT("/address", h.SubmitAddress)
		cart.PUT("/distance", h.SetManualDistance)
		cart.GET("/delivery", h.GetDeliveryState)

		cart.GET("/eligibility", h.GetEligibility)
		cart.POST("/checkout", h.Checkout)
	}
}
