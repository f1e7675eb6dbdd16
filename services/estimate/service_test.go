package estimate

import (
	"context"
	"errors"
	"testing"

	"movebook/models"
	"movebook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompanyRepo struct {
	settings *models.CompanySettings
}

func (s *stubCompanyRepo) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	return nil, nil
}

func (s *stubCompanyRepo) GetByID(ctx context.Context, companyID string) (*models.Company, error) {
	return nil, nil
}

func (s *stubCompanyRepo) GetSettings(ctx context.Context, companyID string) (*models.CompanySettings, error) {
	return s.settings, nil
}

func (s *stubCompanyRepo) UpdateSettings(ctx context.Context, settings models.CompanySettings) error {
	return nil
}

type stubPricingRepo struct {
	rules []models.PricingRule
}

func (s *stubPricingRepo) ListByCompany(ctx context.Context, companyID string) ([]models.PricingRule, error) {
	return s.rules, nil
}

func (s *stubPricingRepo) ReplaceAll(ctx context.Context, companyID string, rules []models.PricingRule) error {
	return nil
}

type stubCouponSvc struct {
	result      *models.CouponResult
	err         error
	calls       int
	gotBedrooms *int
}

func (s *stubCouponSvc) Validate(ctx context.Context, companyID, code string, bedrooms *int) (*models.CouponResult, error) {
	s.calls++
	s.gotBedrooms = bedrooms
	return s.result, s.err
}

func newQuoteService(rules []models.PricingRule, couponSvc *stubCouponSvc) *DefaultEstimateService {
	return &DefaultEstimateService{
		CompanyRepo: &stubCompanyRepo{},
		PricingRepo: &stubPricingRepo{rules: rules},
		CouponSvc:   couponSvc,
	}
}

func TestQuoteDefaultsBedroomsToTwo(t *testing.T) {
	rules := []models.PricingRule{
		{Bedrooms: 2, BasePrice: 650, HourlyRate: 165, MinHours: 4, CrewSize: 3},
	}
	couponSvc := &stubCouponSvc{}
	svc := newQuoteService(rules, couponSvc)

	est, err := svc.Quote(context.Background(), "co-1", models.EstimateInput{DistanceMiles: 10})
	require.NoError(t, err)

	// Bedrooms 0 picks up the 2-bedroom rule.
	assert.Equal(t, 675.0, est.EstimatedPrice)
	assert.Equal(t, 3, est.CrewSize)
	assert.Zero(t, couponSvc.calls) // no code, no validation call
}

func TestQuoteFallsBackToFormulaWithoutRules(t *testing.T) {
	svc := newQuoteService(nil, &stubCouponSvc{})

	est, err := svc.Quote(context.Background(), "co-1", models.EstimateInput{Bedrooms: 6})
	require.NoError(t, err)

	assert.Equal(t, 7.0, est.EstimatedHours)
	assert.Equal(t, 1050.0, est.EstimatedPrice)
	assert.Equal(t, 3, est.CrewSize)
}

func TestQuoteAppliesValidCoupon(t *testing.T) {
	couponSvc := &stubCouponSvc{result: &models.CouponResult{
		Valid: true, Code: "SAVE10",
		DiscountType: models.DiscountPercent, DiscountValue: 10,
		Description: "10% off hourly rate",
	}}
	svc := newQuoteService(nil, couponSvc)

	est, err := svc.Quote(context.Background(), "co-1", models.EstimateInput{Bedrooms: 2, CouponCode: "SAVE10"})
	require.NoError(t, err)

	assert.True(t, est.CouponApplied)
	assert.Equal(t, 15.0, est.DiscountAmount)
	assert.Equal(t, 135.0, est.HourlyRate)
	require.NotNil(t, couponSvc.gotBedrooms)
	assert.Equal(t, 2, *couponSvc.gotBedrooms)
}

func TestQuoteIneligibleCouponDegradesGracefully(t *testing.T) {
	couponSvc := &stubCouponSvc{err: utils.NewValidationError("Invalid promo code")}
	svc := newQuoteService(nil, couponSvc)

	est, err := svc.Quote(context.Background(), "co-1", models.EstimateInput{Bedrooms: 2, CouponCode: "NOPE"})
	require.NoError(t, err)

	assert.False(t, est.CouponApplied)
	assert.Equal(t, 150.0, est.HourlyRate)
	assert.Zero(t, est.DiscountAmount)
}

func TestQuotePropagatesInfrastructureErrors(t *testing.T) {
	couponSvc := &stubCouponSvc{err: errors.New("connection reset")}
	svc := newQuoteService(nil, couponSvc)

	_, err := svc.Quote(context.Background(), "co-1", models.EstimateInput{Bedrooms: 2, CouponCode: "SAVE10"})
	require.EqualError(t, err, "connection reset")
}
