package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCouponIncrementUsage = "coupon:increment_usage"

// CouponUsagePayload identifies a redeemed coupon whose usage counter should
// be bumped out-of-band.
type CouponUsagePayload struct {
	CompanyID  string `json:"companyId"`
	Code       string `json:"code"`
	BookingRef string `json:"bookingRef"`
}

// NewCouponUsageTask builds the background task recording one coupon
// redemption. Retries are bounded: at-least-once is acceptable, but a coupon
// increment must never hold up or fail a booking.
func NewCouponUsageTask(payload CouponUsagePayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCouponIncrementUsage, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}
