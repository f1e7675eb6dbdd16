package models

// EstimateInput carries the customer's answers from the widget.
// Bedrooms defaults to 2 when unspecified; Fullness is a percentage (25 to 125).
type EstimateInput struct {
	Bedrooms      int     `json:"bedrooms"`
	MoveSize      string  `json:"moveSize"`
	DistanceMiles float64 `json:"distanceMiles"`
	Sqft          float64 `json:"sqft"`
	Fullness      float64 `json:"fullness"`
	CouponCode    string  `json:"couponCode"`
}

// Estimate is the ephemeral quote for a prospective booking. It is never
// persisted on its own; its fields are copied onto a booking at submission.
type Estimate struct {
	EstimatedHours float64 `json:"estimatedHours"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	CrewSize       int     `json:"crewSize"`
	DepositAmount  float64 `json:"depositAmount"`
	HourlyRate     float64 `json:"hourlyRate"`

	// Set only when a coupon was applied.
	CouponApplied      bool    `json:"couponApplied,omitempty"`
	OriginalHourlyRate float64 `json:"originalHourlyRate,omitempty"`
	DiscountAmount     float64 `json:"discountAmount,omitempty"`
	CouponDescription  string  `json:"couponDescription,omitempty"`
}
