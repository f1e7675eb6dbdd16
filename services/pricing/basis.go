package pricing

import (
	"math"

	"movebook/models"
)

// BasisKind tags how an estimate's starting numbers were derived.
type BasisKind int

const (
	// BasisRule means a pricing rule matched the requested bedroom count.
	BasisRule BasisKind = iota
	// BasisFormula means no rule matched and company defaults drive the formula.
	BasisFormula
)

// PriceBasis is resolved once per estimate; a single downstream computation
// path consumes whichever variant was produced.
type PriceBasis struct {
	Kind     BasisKind
	Rule     models.PricingRule
	Defaults models.CompanySettings
}

// DefaultBedrooms is assumed when the customer leaves bedrooms unspecified.
const DefaultBedrooms = 2

// Resolve picks the rule whose bedrooms field equals the requested count
// (first match wins). A missing rule is an expected state, not an error: the
// basis falls back to the company's formula defaults.
func Resolve(rules []models.PricingRule, bedrooms int, defaults models.CompanySettings) PriceBasis {
	for _, rule := range rules {
		if rule.Bedrooms == bedrooms {
			return PriceBasis{Kind: BasisRule, Rule: rule, Defaults: defaults}
		}
	}
	return PriceBasis{Kind: BasisFormula, Defaults: defaults}
}

// Seed produces the starting hours, price, crew size and hourly rate for the
// estimate. Rule-based pricing adds mileage on top of the rule's base price;
// formula pricing scales the company's hourly rate by bedrooms+1 hours.
func (b PriceBasis) Seed(bedrooms int, distanceMiles float64) (hours, price float64, crew int, hourlyRate float64) {
	if b.Kind == BasisRule {
		hours = b.Rule.MinHours
		price = b.Rule.BasePrice + distanceMiles*b.Defaults.MileageRate
		crew = b.Rule.CrewSize
		hourlyRate = b.Rule.HourlyRate
		return
	}

	hours = math.Max(b.Defaults.MinHours, float64(bedrooms+1))
	price = b.Defaults.BaseRatePerHour * hours
	crew = 2
	if bedrooms >= 3 {
		crew = 3
	}
	hourlyRate = b.Defaults.BaseRatePerHour
	return
}
