package models

// PricingRule maps a bedroom count to pricing parameters for one company.
// Rules are replaced wholesale when the company saves its pricing table.
type PricingRule struct {
	ID         string  `bson:"id" json:"id"`
	CompanyID  string  `bson:"company_id" json:"companyId"`
	MoveSize   string  `bson:"move_size" json:"moveSize"`
	Bedrooms   int     `bson:"bedrooms" json:"bedrooms"`
	BasePrice  float64 `bson:"base_price" json:"basePrice"`
	HourlyRate float64 `bson:"hourly_rate" json:"hourlyRate"`
	MinHours   float64 `bson:"min_hours" json:"minHours"`
	CrewSize   int     `bson:"crew_size" json:"crewSize"`
}
