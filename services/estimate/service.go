package estimate

import (
	"context"
	"errors"

	companyRepo "movebook/database/repository/company"
	pricingRepo "movebook/database/repository/pricing"
	"movebook/models"
	"movebook/services/coupon"
	"movebook/services/pricing"
	"movebook/utils"

	"go.uber.org/zap"
)

// EstimateService turns a customer's widget inputs into an ephemeral quote.
// Every quote re-reads current rules and settings; nothing is cached.
type EstimateService interface {
	Quote(ctx context.Context, companyID string, in models.EstimateInput) (*models.Estimate, error)
}

// DefaultEstimateService implements EstimateService.
type DefaultEstimateService struct {
	CompanyRepo companyRepo.CompanyRepository
	PricingRepo pricingRepo.PricingRuleRepository
	CouponSvc   coupon.CouponService
}

func (s *DefaultEstimateService) Quote(ctx context.Context, companyID string, in models.EstimateInput) (*models.Estimate, error) {
	settings, err := s.loadSettings(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rules, err := s.PricingRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	bedrooms := in.Bedrooms
	if bedrooms <= 0 {
		bedrooms = pricing.DefaultBedrooms
	}
	basis := pricing.Resolve(rules, bedrooms, settings)

	// An ineligible coupon does not fail the estimate; the quote simply comes
	// back undiscounted. The dedicated coupon endpoint reports reasons.
	var applied *models.CouponResult
	if in.CouponCode != "" {
		res, err := s.CouponSvc.Validate(ctx, companyID, in.CouponCode, &bedrooms)
		var verr *utils.ValidationError
		switch {
		case err == nil:
			applied = res
		case errors.As(err, &verr):
			utils.GetLogger().Debug("coupon rejected during estimate",
				zap.String("companyID", companyID), zap.String("reason", verr.Reason))
		default:
			return nil, err
		}
	}

	est := Calculate(basis, bedrooms, in, applied)
	return &est, nil
}

func (s *DefaultEstimateService) loadSettings(ctx context.Context, companyID string) (models.CompanySettings, error) {
	st, err := s.CompanyRepo.GetSettings(ctx, companyID)
	if err != nil {
		return models.CompanySettings{}, err
	}
	if st == nil {
		return models.DefaultSettings(companyID), nil
	}
	st.Normalize()
	return *st, nil
}
