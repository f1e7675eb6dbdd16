package models

// AvailabilityOverride is a per-company, per-date exception to the default
// daily capacity or open/closed state. Absence means "use the default cap".
type AvailabilityOverride struct {
	CompanyID string `bson:"company_id" json:"companyId"`
	Date      string `bson:"date" json:"date"` // "2006-01-02"
	Available bool   `bson:"available" json:"available"`
	MaxMoves  *int   `bson:"max_moves,omitempty" json:"maxMoves,omitempty"`
}

// Day availability statuses.
const (
	StatusAvailable = "available"
	StatusLimited   = "limited"
	StatusFull      = "full"
	StatusClosed    = "closed"
)

// Arrival window identifiers.
const (
	WindowAM = "am"
	WindowPM = "pm"
)

// TimeWindowSlot is the derived per-window capacity view for one day.
type TimeWindowSlot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
	Booked    int    `json:"booked"`
	Capacity  int    `json:"capacity"`
}

// DayAvailability is the derived capacity view for a single date. It is
// computed from live booking counts at read time and never stored.
type DayAvailability struct {
	Date      string           `json:"date"`
	Available bool             `json:"available"`
	Status    string           `json:"status"`
	Remaining int              `json:"remaining"`
	Capacity  int              `json:"capacity"`
	Booked    int              `json:"booked"`
	Slots     []TimeWindowSlot `json:"slots"`
}

// DayStatus is the compact per-day entry of a month/range query.
type DayStatus struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Booked   int    `json:"booked"`
	Capacity int    `json:"capacity"`
}
