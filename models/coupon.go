package models

import (
	"fmt"
	"strconv"
	"time"
)

// Coupon discount types.
const (
	DiscountPercent = "percent"
	DiscountFlat    = "flat"
)

// Coupon is a per-company promo code. Codes are stored upper-cased and matched
// case-insensitively. TimesUsed is only ever incremented at booking-submission
// time, never during validation.
type Coupon struct {
	ID             string    `bson:"id" json:"id"`
	CompanyID      string    `bson:"company_id" json:"companyId"`
	Code           string    `bson:"code" json:"code"`
	DiscountType   string    `bson:"discount_type" json:"discountType"`
	DiscountValue  float64   `bson:"discount_value" json:"discountValue"`
	MinBedrooms    *int      `bson:"min_bedrooms,omitempty" json:"minBedrooms,omitempty"`
	ExpirationDate *string   `bson:"expiration_date,omitempty" json:"expirationDate,omitempty"` // "2006-01-02"
	MaxUses        *int      `bson:"max_uses,omitempty" json:"maxUses,omitempty"`
	TimesUsed      int       `bson:"times_used" json:"timesUsed"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// Description renders the human-readable discount label. It is derived, never stored.
func (c Coupon) Description() string {
	v := strconv.FormatFloat(c.DiscountValue, 'f', -1, 64)
	if c.DiscountType == DiscountPercent {
		return fmt.Sprintf("%s%% off hourly rate", v)
	}
	return fmt.Sprintf("$%s off per hour", v)
}

// CouponResult is the wire shape returned by a successful validation.
type CouponResult struct {
	Valid         bool    `json:"valid"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	Description   string  `json:"description"`
}
