package coupon

import (
	"context"
	"testing"
	"time"

	"movebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponRepo struct {
	coupons        []models.Coupon
	incrementCalls int
}

func (f *fakeCouponRepo) GetActiveByCode(ctx context.Context, companyID, code string) (*models.Coupon, error) {
	for i := range f.coupons {
		c := f.coupons[i]
		if c.CompanyID == companyID && c.Code == code && c.Active {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCouponRepo) ListByCompany(ctx context.Context, companyID string) ([]models.Coupon, error) {
	return f.coupons, nil
}

func (f *fakeCouponRepo) Create(ctx context.Context, coupon models.Coupon) error {
	f.coupons = append(f.coupons, coupon)
	return nil
}

func (f *fakeCouponRepo) Delete(ctx context.Context, companyID, couponID string) error {
	return nil
}

func (f *fakeCouponRepo) IncrementUsage(ctx context.Context, companyID, code string) error {
	f.incrementCalls++
	return nil
}

func intPtr(v int) *int { return &v }

func daysOut(n int) *string {
	s := time.Now().AddDate(0, 0, n).Format("2006-01-02")
	return &s
}

func newService(coupons ...models.Coupon) (*DefaultCouponService, *fakeCouponRepo) {
	repo := &fakeCouponRepo{coupons: coupons}
	return &DefaultCouponService{Repo: repo}, repo
}

func TestValidateUnknownCode(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Validate(context.Background(), "co-1", "NOPE", nil)
	require.EqualError(t, err, "Invalid promo code")
}

func TestValidateInactiveCode(t *testing.T) {
	svc, _ := newService(models.Coupon{
		CompanyID: "co-1", Code: "SAVE10",
		DiscountType: models.DiscountPercent, DiscountValue: 10,
		Active: false,
	})

	_, err := svc.Validate(context.Background(), "co-1", "SAVE10", nil)
	require.EqualError(t, err, "Invalid promo code")
}

func TestValidateEmptyCode(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Validate(context.Background(), "co-1", "   ", nil)
	require.EqualError(t, err, "Code required")
}

func TestValidateNormalizesInput(t *testing.T) {
	svc, _ := newService(models.Coupon{
		CompanyID: "co-1", Code: "SAVE10",
		DiscountType: models.DiscountPercent, DiscountValue: 10,
		Active: true,
	})

	res, err := svc.Validate(context.Background(), "co-1", "  save10 ", nil)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "SAVE10", res.Code)
}

func TestValidateExpiration(t *testing.T) {
	svc, _ := newService(
		models.Coupon{
			CompanyID: "co-1", Code: "OLD",
			DiscountType: models.DiscountPercent, DiscountValue: 10,
			ExpirationDate: daysOut(-1), Active: true,
		},
		models.Coupon{
			CompanyID: "co-1", Code: "TODAY",
			DiscountType: models.DiscountPercent, DiscountValue: 10,
			ExpirationDate: daysOut(0), Active: true,
		},
	)

	_, err := svc.Validate(context.Background(), "co-1", "OLD", nil)
	require.EqualError(t, err, "This promo code has expired")

	// Still valid on the expiration date itself.
	res, err := svc.Validate(context.Background(), "co-1", "TODAY", nil)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestValidateUsageCapBoundary(t *testing.T) {
	svc, _ := newService(
		models.Coupon{
			CompanyID: "co-1", Code: "NEARCAP",
			DiscountType: models.DiscountPercent, DiscountValue: 10,
			MaxUses: intPtr(5), TimesUsed: 4, Active: true,
		},
		models.Coupon{
			CompanyID: "co-1", Code: "ATCAP",
			DiscountType: models.DiscountPercent, DiscountValue: 10,
			MaxUses: intPtr(5), TimesUsed: 5, Active: true,
		},
	)

	res, err := svc.Validate(context.Background(), "co-1", "NEARCAP", nil)
	require.NoError(t, err)
	assert.True(t, res.Valid)

	_, err = svc.Validate(context.Background(), "co-1", "ATCAP", nil)
	require.EqualError(t, err, "This promo code has reached its usage limit")
}

func TestValidateMinBedrooms(t *testing.T) {
	svc, _ := newService(models.Coupon{
		CompanyID: "co-1", Code: "BIGHOME",
		DiscountType: models.DiscountFlat, DiscountValue: 15,
		MinBedrooms: intPtr(3), Active: true,
	})

	_, err := svc.Validate(context.Background(), "co-1", "BIGHOME", intPtr(2))
	require.EqualError(t, err, "This promo code requires at least 3 bedrooms")

	res, err := svc.Validate(context.Background(), "co-1", "BIGHOME", intPtr(3))
	require.NoError(t, err)
	assert.True(t, res.Valid)

	// Bedroom count unknown at validation time skips the minimum check.
	res, err = svc.Validate(context.Background(), "co-1", "BIGHOME", nil)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestValidateResultShape(t *testing.T) {
	svc, _ := newService(
		models.Coupon{
			CompanyID: "co-1", Code: "SAVE10",
			DiscountType: models.DiscountPercent, DiscountValue: 10,
			Active: true,
		},
		models.Coupon{
			CompanyID: "co-1", Code: "TENOFF",
			DiscountType: models.DiscountFlat, DiscountValue: 10.5,
			Active: true,
		},
	)

	res, err := svc.Validate(context.Background(), "co-1", "SAVE10", nil)
	require.NoError(t, err)
	assert.Equal(t, "10% off hourly rate", res.Description)
	assert.Equal(t, models.DiscountPercent, res.DiscountType)
	assert.Equal(t, 10.0, res.DiscountValue)

	res, err = svc.Validate(context.Background(), "co-1", "TENOFF", nil)
	require.NoError(t, err)
	assert.Equal(t, "$10.5 off per hour", res.Description)
}

func TestValidateNeverTouchesUsage(t *testing.T) {
	svc, repo := newService(models.Coupon{
		CompanyID: "co-1", Code: "SAVE10",
		DiscountType: models.DiscountPercent, DiscountValue: 10,
		Active: true,
	})

	_, _ = svc.Validate(context.Background(), "co-1", "SAVE10", nil)
	_, _ = svc.Validate(context.Background(), "co-1", "MISSING", nil)
	assert.Zero(t, repo.incrementCalls)
}
