package coupon

import (
	"context"
	"fmt"
	"strings"
	"time"

	couponRepo "movebook/database/repository/coupon"
	"movebook/models"
	"movebook/utils"
)

// CouponService validates promo codes. Validation is side-effect-free and
// idempotent: times_used is never touched here, only by the background usage
// worker after a booking lands.
type CouponService interface {
	Validate(ctx context.Context, companyID, code string, bedrooms *int) (*models.CouponResult, error)
}

// DefaultCouponService implements CouponService.
type DefaultCouponService struct {
	Repo couponRepo.CouponRepository
}

// NormalizeCode upper-cases and trims a promo code for case-insensitive matching.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate runs the eligibility checks in order, short-circuiting on the first
// failure: unknown/inactive, expired, usage cap, bedroom minimum. Rejections
// come back as ValidationError with the reason shown to the customer.
func (s *DefaultCouponService) Validate(ctx context.Context, companyID, code string, bedrooms *int) (*models.CouponResult, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, utils.NewValidationError("Code required")
	}

	c, err := s.Repo.GetActiveByCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.NewValidationError("Invalid promo code")
	}

	// A coupon is still valid on its expiration date; it lapses the day after.
	if c.ExpirationDate != nil && *c.ExpirationDate != "" {
		today := time.Now().Format("2006-01-02")
		if *c.ExpirationDate < today {
			return nil, utils.NewValidationError("This promo code has expired")
		}
	}

	if c.MaxUses != nil && c.TimesUsed >= *c.MaxUses {
		return nil, utils.NewValidationError("This promo code has reached its usage limit")
	}

	if c.MinBedrooms != nil && bedrooms != nil && *bedrooms < *c.MinBedrooms {
		return nil, utils.NewValidationError(
			fmt.Sprintf("This promo code requires at least %d bedrooms", *c.MinBedrooms))
	}

	return &models.CouponResult{
		Valid:         true,
		Code:          c.Code,
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
		Description:   c.Description(),
	}, nil
}
