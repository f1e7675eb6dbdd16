package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	overrideRepo "movebook/database/repository/availability"
	bookingRepo "movebook/database/repository/booking"
	companyRepo "movebook/database/repository/company"
	couponRepo "movebook/database/repository/coupon"
	pricingRepo "movebook/database/repository/pricing"
	"movebook/models"
	"movebook/utils"
)

// CompanyHandler serves the JWT-protected dashboard endpoints. It enforces
// the validation rules guarding what the pricing and availability engines
// consume; the engines themselves never see un-normalized input.
type CompanyHandler struct {
	CompanyRepo  companyRepo.CompanyRepository
	PricingRepo  pricingRepo.PricingRuleRepository
	CouponRepo   couponRepo.CouponRepository
	OverrideRepo overrideRepo.OverrideRepository
	BookingRepo  bookingRepo.BookingRepository
}

// NewCompanyHandler constructs a CompanyHandler.
func NewCompanyHandler(
	companies companyRepo.CompanyRepository,
	rules pricingRepo.PricingRuleRepository,
	coupons couponRepo.CouponRepository,
	overrides overrideRepo.OverrideRepository,
	bookings bookingRepo.BookingRepository,
) *CompanyHandler {
	return &CompanyHandler{
		CompanyRepo:  companies,
		PricingRepo:  rules,
		CouponRepo:   coupons,
		OverrideRepo: overrides,
		BookingRepo:  bookings,
	}
}

// GetSettingsHandler returns the company's engine settings with defaults applied.
func (h *CompanyHandler) GetSettingsHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	settings, err := h.CompanyRepo.GetSettings(c.Request.Context(), companyID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if settings == nil {
		def := models.DefaultSettings(companyID)
		settings = &def
	}
	settings.Normalize()
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettingsHandler validates and saves the company's engine settings.
func (h *CompanyHandler) UpdateSettingsHandler(c *gin.Context) {
	companyID := c.GetString("companyID")

	var settings models.CompanySettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	settings.CompanyID = companyID

	if settings.DepositType != "" &&
		settings.DepositType != models.DepositFlat &&
		settings.DepositType != models.DepositPercent &&
		settings.DepositType != models.DepositHourly {
		c.JSON(http.StatusBadRequest, gin.H{"error": "depositType must be flat, percent or hourly"})
		return
	}
	if settings.BaseRatePerHour < 0 || settings.MinHours < 0 || settings.DepositAmount < 0 ||
		settings.MileageRate < 0 || settings.MaxMovesPerDay < 0 || settings.MaxMovesAM < 0 ||
		settings.MaxMovesPM < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "settings values cannot be negative"})
		return
	}

	if err := h.CompanyRepo.UpdateSettings(c.Request.Context(), settings); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpsertOverrideHandler sets a per-date capacity exception.
func (h *CompanyHandler) UpsertOverrideHandler(c *gin.Context) {
	companyID := c.GetString("companyID")

	var override models.AvailabilityOverride
	if err := c.ShouldBindJSON(&override); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	override.CompanyID = companyID

	if _, err := time.Parse("2006-01-02", override.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if override.MaxMoves != nil && *override.MaxMoves < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maxMoves cannot be negative"})
		return
	}

	if err := h.OverrideRepo.Upsert(c.Request.Context(), override); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteOverrideHandler removes a per-date exception, restoring the default cap.
func (h *CompanyHandler) DeleteOverrideHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	date := c.Param("date")
	if err := h.OverrideRepo.Delete(c.Request.Context(), companyID, date); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListBookingsHandler returns the company's bookings, newest first.
func (h *CompanyHandler) ListBookingsHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	bookings, err := h.BookingRepo.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatusHandler transitions a booking's status. Cancelling frees
// the booking's capacity implicitly, since availability counts exclude
// cancelled bookings.
func (h *CompanyHandler) UpdateBookingStatusHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	bookingID := c.Param("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	switch input.Status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status"})
		return
	}

	if err := h.BookingRepo.UpdateStatus(c.Request.Context(), companyID, bookingID, input.Status); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
