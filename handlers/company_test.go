package handlers

import (
	"context"
	"net/http"
	"testing"

	couponRepo "movebook/database/repository/coupon"
	"movebook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponStore struct {
	coupons   []models.Coupon
	createErr error
}

func (f *fakeCouponStore) GetActiveByCode(ctx context.Context, companyID, code string) (*models.Coupon, error) {
	return nil, nil
}

func (f *fakeCouponStore) ListByCompany(ctx context.Context, companyID string) ([]models.Coupon, error) {
	return f.coupons, nil
}

func (f *fakeCouponStore) Create(ctx context.Context, coupon models.Coupon) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.coupons = append(f.coupons, coupon)
	return nil
}

func (f *fakeCouponStore) Delete(ctx context.Context, companyID, couponID string) error {
	return nil
}

func (f *fakeCouponStore) IncrementUsage(ctx context.Context, companyID, code string) error {
	return nil
}

type fakeOverrideStore struct {
	upserted []models.AvailabilityOverride
}

func (f *fakeOverrideStore) GetByDate(ctx context.Context, companyID, date string) (*models.AvailabilityOverride, error) {
	return nil, nil
}

func (f *fakeOverrideStore) ListRange(ctx context.Context, companyID, from, to string) ([]models.AvailabilityOverride, error) {
	return nil, nil
}

func (f *fakeOverrideStore) Upsert(ctx context.Context, override models.AvailabilityOverride) error {
	f.upserted = append(f.upserted, override)
	return nil
}

func (f *fakeOverrideStore) Delete(ctx context.Context, companyID, date string) error {
	return nil
}

type fakeBookingStore struct {
	bookings []models.Booking
	statuses map[string]string
}

func (f *fakeBookingStore) Insert(ctx context.Context, booking models.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingStore) ListByCompany(ctx context.Context, companyID string) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingStore) UpdateStatus(ctx context.Context, companyID, bookingID, status string) error {
	if f.statuses == nil {
		f.statuses = map[string]string{}
	}
	f.statuses[bookingID] = status
	return nil
}

func (f *fakeBookingStore) CountActiveByDate(ctx context.Context, companyID, date string) (int, error) {
	return 0, nil
}

func (f *fakeBookingStore) CountActiveByWindow(ctx context.Context, companyID, date, window string) (int, error) {
	return 0, nil
}

func (f *fakeBookingStore) CountActiveInRange(ctx context.Context, companyID, from, to string) (map[string]int, error) {
	return nil, nil
}

func newCompanyRouter(h *CompanyHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/company")
	api.Use(func(c *gin.Context) {
		c.Set("companyID", "co-1")
	})
	{
		api.GET("/settings", h.GetSettingsHandler)
		api.PUT("/settings", h.UpdateSettingsHandler)
		api.PUT("/pricing", h.ReplacePricingHandler)
		api.POST("/coupons", h.CreateCouponHandler)
		api.PUT("/availability", h.UpsertOverrideHandler)
		api.PATCH("/bookings/:id", h.UpdateBookingStatusHandler)
	}
	return r
}

func TestUpdateSettingsRejectsBadDepositType(t *testing.T) {
	h := &CompanyHandler{CompanyRepo: &stubCompanyRepo{}}
	r := newCompanyRouter(h)

	w := doJSON(t, r, http.MethodPut, "/api/company/settings", `{"depositType":"weekly"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/company/settings", `{"baseRatePerHour":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/company/settings", `{"depositType":"percent","depositAmount":25}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReplacePricingAllOrNothing(t *testing.T) {
	h := &CompanyHandler{PricingRepo: &stubPricingRepo{}}
	r := newCompanyRouter(h)

	// One invalid rule rejects the whole set.
	w := doJSON(t, r, http.MethodPut, "/api/company/pricing", `{"rules":[
		{"bedrooms":2,"basePrice":650,"hourlyRate":165,"minHours":4,"crewSize":3},
		{"bedrooms":3,"basePrice":800,"hourlyRate":185,"minHours":5,"crewSize":0}
	]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "crewSize")

	w = doJSON(t, r, http.MethodPut, "/api/company/pricing", `{"rules":[
		{"bedrooms":2,"basePrice":650,"hourlyRate":165,"minHours":4,"crewSize":3}
	]}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateCoupon(t *testing.T) {
	store := &fakeCouponStore{}
	h := &CompanyHandler{CouponRepo: store}
	r := newCompanyRouter(h)

	w := doJSON(t, r, http.MethodPost, "/api/company/coupons", `{"code":" save10 ","discountValue":10}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.coupons, 1)
	created := store.coupons[0]
	assert.Equal(t, "SAVE10", created.Code)
	assert.Equal(t, models.DiscountPercent, created.DiscountType) // default
	assert.True(t, created.Active)
	assert.Zero(t, created.TimesUsed)

	w = doJSON(t, r, http.MethodPost, "/api/company/coupons", `{"code":"","discountValue":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Code required"}`, w.Body.String())

	store.createErr = couponRepo.ErrDuplicateCode
	w = doJSON(t, r, http.MethodPost, "/api/company/coupons", `{"code":"SAVE10","discountValue":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Coupon code already exists"}`, w.Body.String())
}

func TestUpsertOverrideValidatesDate(t *testing.T) {
	store := &fakeOverrideStore{}
	h := &CompanyHandler{OverrideRepo: store}
	r := newCompanyRouter(h)

	w := doJSON(t, r, http.MethodPut, "/api/company/availability", `{"date":"June 15","available":false}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.upserted)

	w = doJSON(t, r, http.MethodPut, "/api/company/availability", `{"date":"2025-06-15","available":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.upserted, 1)
	assert.Equal(t, "co-1", store.upserted[0].CompanyID)
}

func TestUpdateBookingStatus(t *testing.T) {
	store := &fakeBookingStore{}
	h := &CompanyHandler{BookingRepo: store}
	r := newCompanyRouter(h)

	w := doJSON(t, r, http.MethodPatch, "/api/company/bookings/bk-1", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/company/bookings/bk-1", `{"status":"cancelled"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingCancelled, store.statuses["bk-1"])
}
