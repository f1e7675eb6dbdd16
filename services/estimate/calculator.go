package estimate

import (
	"math"

	"movebook/models"
	"movebook/services/pricing"
)

// Square footage is normalized against a nominal 1500 sqft home.
const nominalSqft = 1500.0

// round1 rounds hours to one decimal place, matching the observed behavior of
// the pricing pipeline. Money stays full-precision until the return boundary.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Calculate runs the estimate pipeline on a resolved price basis: seed, sqft
// adjustment, fullness multiplier, coupon on the hourly rate, price floor,
// then deposit. The optional coupon must already be validated.
func Calculate(basis pricing.PriceBasis, bedrooms int, in models.EstimateInput, coupon *models.CouponResult) models.Estimate {
	hours, price, crew, hourlyRate := basis.Seed(bedrooms, in.DistanceMiles)

	// Square footage only ever increases hours, never below the base estimate.
	if in.Sqft > 0 {
		sqftFactor := in.Sqft / nominalSqft
		hours = math.Max(hours, round1(hours*sqftFactor))
	}

	// Fullness arrives as a percentage (25 to 125) and compounds with the sqft
	// adjustment, scaling both hours and price.
	if in.Fullness > 0 {
		multiplier := in.Fullness / 100
		hours = round1(hours * multiplier)
		price = math.Round(price * multiplier)
	}

	est := models.Estimate{
		EstimatedHours: hours,
		CrewSize:       crew,
		HourlyRate:     hourlyRate,
	}

	if coupon != nil {
		originalRate := hourlyRate
		var discount float64
		if coupon.DiscountType == models.DiscountPercent {
			discount = hourlyRate * coupon.DiscountValue / 100
		} else {
			discount = math.Min(coupon.DiscountValue, hourlyRate)
		}
		hourlyRate -= discount

		est.CouponApplied = true
		est.OriginalHourlyRate = math.Round(originalRate)
		est.DiscountAmount = math.Round(discount)
		est.CouponDescription = coupon.Description
		est.HourlyRate = hourlyRate
	}

	// The discounted rate can only raise the floor of the final price; it is
	// never used to undercut the rule-based price below hours x rate.
	price = math.Max(price, math.Round(hourlyRate*hours))

	est.EstimatedPrice = math.Round(price)
	est.HourlyRate = math.Round(est.HourlyRate)
	est.DepositAmount = math.Round(Deposit(basis.Defaults.DepositType, basis.Defaults.DepositAmount, price, hourlyRate))
	return est
}
