package models

import "time"

// Booking statuses. A booking counts against capacity unless cancelled.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking is a confirmed move reservation. Estimate fields are copied onto it
// at submission time. TimeWindow is "am", "pm", or empty; legacy empty values
// count against the AM window.
type Booking struct {
	ID                 string    `bson:"id" json:"id"`
	CompanyID          string    `bson:"company_id" json:"companyId"`
	BookingRef         string    `bson:"booking_ref" json:"bookingRef"`
	Status             string    `bson:"status" json:"status"`
	CustomerName       string    `bson:"customer_name" json:"customerName"`
	CustomerEmail      string    `bson:"customer_email" json:"customerEmail"`
	CustomerPhone      string    `bson:"customer_phone" json:"customerPhone"`
	OriginAddress      string    `bson:"origin_address" json:"originAddress"`
	DestinationAddress string    `bson:"destination_address" json:"destinationAddress"`
	MoveDate           string    `bson:"move_date" json:"moveDate"` // "2006-01-02"
	TimeWindow         string    `bson:"time_window" json:"timeWindow"`
	HomeSize           string    `bson:"home_size" json:"homeSize"`
	Bedrooms           int       `bson:"bedrooms" json:"bedrooms"`
	EstimatedHours     float64   `bson:"estimated_hours" json:"estimatedHours"`
	EstimatedPrice     float64   `bson:"estimated_price" json:"estimatedPrice"`
	DepositAmount      float64   `bson:"deposit_amount" json:"depositAmount"`
	HourlyRate         float64   `bson:"hourly_rate" json:"hourlyRate"`
	CrewSize           int       `bson:"crew_size" json:"crewSize"`
	CouponCode         string    `bson:"coupon_code,omitempty" json:"couponCode,omitempty"`
	Notes              string    `bson:"notes" json:"notes"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
}

// BookingInput is the widget booking submission payload.
type BookingInput struct {
	CustomerName       string  `json:"customerName"`
	CustomerEmail      string  `json:"customerEmail"`
	CustomerPhone      string  `json:"customerPhone"`
	OriginAddress      string  `json:"originAddress"`
	DestinationAddress string  `json:"destinationAddress"`
	MoveDate           string  `json:"moveDate"`
	TimeWindow         string  `json:"timeWindow"`
	HomeSize           string  `json:"homeSize"`
	Bedrooms           int     `json:"bedrooms"`
	DistanceMiles      float64 `json:"distanceMiles"`
	Sqft               float64 `json:"sqft"`
	Fullness           float64 `json:"fullness"`
	CouponCode         string  `json:"couponCode"`
	Notes              string  `json:"notes"`
}
