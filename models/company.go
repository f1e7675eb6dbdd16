package models

import "time"

// Company is one tenant: a moving company with an embeddable booking widget.
type Company struct {
	ID           string    `bson:"id" json:"id"`
	Slug         string    `bson:"slug" json:"slug"`
	Name         string    `bson:"name" json:"name"`
	LogoURL      string    `bson:"logo_url" json:"logoUrl"`
	PrimaryColor string    `bson:"primary_color" json:"primaryColor"`
	AccentColor  string    `bson:"accent_color" json:"accentColor"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// CompanySettings holds the per-company knobs the estimate and availability
// engines read. Zero values are replaced with platform defaults by Normalize.
type CompanySettings struct {
	CompanyID       string  `bson:"company_id" json:"companyId"`
	BaseRatePerHour float64 `bson:"base_rate_per_hour" json:"baseRatePerHour"`
	MinHours        float64 `bson:"min_hours" json:"minHours"`
	DepositType     string  `bson:"deposit_type" json:"depositType"`
	DepositAmount   float64 `bson:"deposit_amount" json:"depositAmount"`
	MileageRate     float64 `bson:"mileage_rate" json:"mileageRate"`

	MaxMovesPerDay int `bson:"max_moves_per_day" json:"maxMovesPerDay"`
	MaxMovesAM     int `bson:"max_moves_am" json:"maxMovesAm"`
	MaxMovesPM     int `bson:"max_moves_pm" json:"maxMovesPm"`

	// Arrival windows shown in the widget. The secondary (PM) window only
	// exists when explicitly enabled.
	DefaultTimeWindow      string `bson:"default_time_window" json:"defaultTimeWindow"`
	SecondaryTimeWindow    string `bson:"secondary_time_window" json:"secondaryTimeWindow"`
	SecondaryWindowEnabled bool   `bson:"secondary_window_enabled" json:"secondaryWindowEnabled"`
}

// Deposit policy types.
const (
	DepositFlat    = "flat"
	DepositPercent = "percent"
	DepositHourly  = "hourly"
)

// Platform defaults applied when a company has not configured a value.
const (
	DefaultBaseRatePerHour = 150.0
	DefaultMinHours        = 2.0
	DefaultMileageRate     = 2.5
	DefaultDepositAmount   = 100.0
	DefaultMaxMovesPerDay  = 3
	DefaultMaxMovesAM      = 3
	DefaultMaxMovesPM      = 2
)

// Normalize fills unset fields with platform defaults so the engines never
// branch on missing settings.
func (s *CompanySettings) Normalize() {
	if s.BaseRatePerHour <= 0 {
		s.BaseRatePerHour = DefaultBaseRatePerHour
	}
	if s.MinHours <= 0 {
		s.MinHours = DefaultMinHours
	}
	if s.MileageRate <= 0 {
		s.MileageRate = DefaultMileageRate
	}
	if s.DepositType == "" {
		s.DepositType = DepositFlat
	}
	if s.DepositAmount <= 0 {
		s.DepositAmount = DefaultDepositAmount
	}
	if s.MaxMovesPerDay <= 0 {
		s.MaxMovesPerDay = DefaultMaxMovesPerDay
	}
	if s.MaxMovesAM <= 0 {
		s.MaxMovesAM = DefaultMaxMovesAM
	}
	if s.MaxMovesPM <= 0 {
		s.MaxMovesPM = DefaultMaxMovesPM
	}
}

// DefaultSettings returns normalized settings for a company that has none stored.
func DefaultSettings(companyID string) CompanySettings {
	s := CompanySettings{CompanyID: companyID}
	s.Normalize()
	return s
}
