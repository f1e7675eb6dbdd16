package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	companyRepo "movebook/database/repository/company"
	pricingRepo "movebook/database/repository/pricing"
	"movebook/models"
	"movebook/services/availability"
	"movebook/services/booking"
	"movebook/services/coupon"
	"movebook/services/estimate"
	"movebook/services/events"
	"movebook/utils"
)

// WidgetHandler serves the public, embeddable booking widget endpoints. Every
// route resolves the company slug first; an unknown slug is a 404 before any
// computation.
type WidgetHandler struct {
	CompanyRepo     companyRepo.CompanyRepository
	PricingRepo     pricingRepo.PricingRuleRepository
	EstimateSvc     estimate.EstimateService
	CouponSvc       coupon.CouponService
	AvailabilitySvc availability.AvailabilityService
	BookingSvc      booking.BookingService
	EventsSvc       events.EventService
	Cache           *redis.Client
}

// NewWidgetHandler constructs a WidgetHandler.
func NewWidgetHandler(
	companies companyRepo.CompanyRepository,
	rules pricingRepo.PricingRuleRepository,
	estimateSvc estimate.EstimateService,
	couponSvc coupon.CouponService,
	availabilitySvc availability.AvailabilityService,
	bookingSvc booking.BookingService,
	eventsSvc events.EventService,
	cache *redis.Client,
) *WidgetHandler {
	return &WidgetHandler{
		CompanyRepo:     companies,
		PricingRepo:     rules,
		EstimateSvc:     estimateSvc,
		CouponSvc:       couponSvc,
		AvailabilitySvc: availabilitySvc,
		BookingSvc:      bookingSvc,
		EventsSvc:       eventsSvc,
		Cache:           cache,
	}
}

// resolveCompany maps the slug to a company, answering 404 on unknown slugs.
func (h *WidgetHandler) resolveCompany(c *gin.Context) (*models.Company, bool) {
	co, err := h.CompanyRepo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.RespondError(c, err)
		return nil, false
	}
	if co == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return nil, false
	}
	return co, true
}

// EstimateHandler computes a quote from the customer's widget inputs.
func (h *WidgetHandler) EstimateHandler(c *gin.Context) {
	co, ok := h.resolveCompany(c)
	if !ok {
		return
	}

	var input models.EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	est, err := h.EstimateSvc.Quote(c.Request.Context(), co.ID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// CouponHandler validates a promo code without consuming it.
func (h *WidgetHandler) CouponHandler(c *gin.Context) {
	co, ok := h.resolveCompany(c)
	if !ok {
		return
	}

	var input struct {
		Code     string `json:"code"`
		Bedrooms *int   `json:"bedrooms"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.CouponSvc.Validate(c.Request.Context(), co.ID, input.Code, input.Bedrooms)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AvailabilityHandler answers either a single-date query (?date=YYYY-MM-DD) or
// a month/range query (?month=YYYY-MM).
func (h *WidgetHandler) AvailabilityHandler(c *gin.Context) {
	co, ok := h.resolveCompany(c)
	if !ok {
		return
	}

	if date := c.Query("date"); date != "" {
		day, err := h.AvailabilitySvc.Day(c.Request.Context(), co.ID, date)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, day)
		return
	}

	days, err := h.AvailabilitySvc.Month(c.Request.Context(), co.ID, c.Query("month"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// BookHandler submits a booking after the capacity gate and a server-side
// estimate recompute.
func (h *WidgetHandler) BookHandler(c *gin.Context) {
	co, ok := h.resolveCompany(c)
	if !ok {
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booked, err := h.BookingSvc.Submit(c.Request.Context(), co.ID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookingRef":     booked.BookingRef,
		"estimatedPrice": booked.EstimatedPrice,
		"depositAmount":  booked.DepositAmount,
	})
}

// EventsHandler records a widget funnel event.
func (h *WidgetHandler) EventsHandler(c *gin.Context) {
	co, ok := h.resolveCompany(c)
	if !ok {
		return
	}

	var input struct {
		Event     string `json:"event"`
		Step      int    `json:"step"`
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Event == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event required"})
		return
	}

	h.EventsSvc.Track(c.Request.Context(), co.ID, models.WidgetEvent{
		Event:     input.Event,
		Step:      input.Step,
		SessionID: input.SessionID,
	})
	c.Status(http.StatusNoContent)
}

// widgetConfigTTL bounds how stale widget branding may get. Pricing, coupon
// and availability reads are never cached.
const widgetConfigTTL = 60 * time.Second

// ConfigHandler returns the widget's branding, public settings and pricing
// table for the embed script.
func (h *WidgetHandler) ConfigHandler(c *gin.Context) {
	slug := c.Param("slug")
	cacheKey := "widget:config:" + slug
	ctx := c.Request.Context()

	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	co, ok := h.resolveCompany(c)
	if !ok {
		return
	}

	settings, err := h.CompanyRepo.GetSettings(ctx, co.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if settings == nil {
		def := models.DefaultSettings(co.ID)
		settings = &def
	}
	settings.Normalize()

	rules, err := h.PricingRepo.ListByCompany(ctx, co.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	payload := gin.H{
		"company": gin.H{
			"name":         co.Name,
			"slug":         co.Slug,
			"logoUrl":      co.LogoURL,
			"primaryColor": co.PrimaryColor,
			"accentColor":  co.AccentColor,
		},
		"settings": gin.H{
			"baseRatePerHour": settings.BaseRatePerHour,
			"minHours":        settings.MinHours,
			"depositType":     settings.DepositType,
			"depositAmount":   settings.DepositAmount,
			"mileageRate":     settings.MileageRate,
		},
		"pricingRules": rules,
	}

	if h.Cache != nil {
		if raw, err := json.Marshal(payload); err == nil {
			h.cacheSet(ctx, cacheKey, raw)
		}
	}
	c.JSON(http.StatusOK, payload)
}

func (h *WidgetHandler) cacheSet(ctx context.Context, key string, raw []byte) {
	if err := h.Cache.Set(ctx, key, raw, widgetConfigTTL).Err(); err != nil {
		utils.GetLogger().Debug("widget config cache write failed: " + err.Error())
	}
}
