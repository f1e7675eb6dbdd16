package routes

import (
	"movebook/handlers"
	"movebook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterWidgetRoutes registers the public widget endpoints. Every route is
// slug-scoped and rate-limited per client IP; there is no authentication.
func RegisterWidgetRoutes(r *gin.Engine, h *handlers.WidgetHandler) {
	widget := r.Group("/api/widget/:slug")
	widget.Use(middleware.RateLimitMiddleware())
	{
		widget.GET("/config", h.ConfigHandler)
		widget.POST("/estimate", h.EstimateHandler)
		widget.POST("/coupon", h.CouponHandler)
		widget.GET("/availability", h.AvailabilityHandler)
		widget.POST("/book", h.BookHandler)
		widget.POST("/events", h.EventsHandler)
	}
}
