package models

import "time"

// WidgetEvent is a funnel analytics event emitted by the booking widget
// (step reached, estimate shown, booking completed).
type WidgetEvent struct {
	ID        string    `bson:"id" json:"id"`
	CompanyID string    `bson:"company_id" json:"companyId"`
	Event     string    `bson:"event" json:"event"`
	Step      int       `bson:"step,omitempty" json:"step,omitempty"`
	SessionID string    `bson:"session_id,omitempty" json:"sessionId,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
