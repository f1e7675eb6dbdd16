package routes

import (
	"movebook/handlers"
	"movebook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers the dashboard endpoints. All of them require
// a company-scoped token from the external auth service.
func RegisterCompanyRoutes(r *gin.Engine, h *handlers.CompanyHandler) {
	api := r.Group("/api/company")
	api.Use(middleware.CompanyAuthMiddleware())
	{
		api.GET("/settings", h.GetSettingsHandler)
		api.PUT("/settings", h.UpdateSettingsHandler)

		api.GET("/pricing", h.GetPricingHandler)
		api.PUT("/pricing", h.ReplacePricingHandler)

		api.GET("/coupons", h.ListCouponsHandler)
		api.POST("/coupons", h.CreateCouponHandler)
		api.DELETE("/coupons/:id", h.DeleteCouponHandler)

		api.PUT("/availability", h.UpsertOverrideHandler)
		api.DELETE("/availability/:date", h.DeleteOverrideHandler)

		api.GET("/bookings", h.ListBookingsHandler)
		api.PATCH("/bookings/:id", h.UpdateBookingStatusHandler)
	}
}
