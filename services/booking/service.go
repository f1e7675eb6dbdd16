package booking

import (
	"context"
	"strings"
	"time"

	bookingRepo "movebook/database/repository/booking"
	"movebook/models"
	"movebook/services/availability"
	"movebook/services/coupon"
	"movebook/services/estimate"
	"movebook/services/events"
	"movebook/services/tasks"
	"movebook/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingService accepts widget booking submissions.
//
// The capacity gate re-counts live bookings and is not transactional: two
// concurrent submissions for the same date can both pass before either row is
// inserted, over-booking the cap by one. This is a known, accepted race; the
// check deliberately does not lock or serialize submissions.
type BookingService interface {
	Submit(ctx context.Context, companyID string, in models.BookingInput) (*models.Booking, error)
}

// TaskEnqueuer is the slice of asynq.Client the booking service needs.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Availability availability.AvailabilityService
	EstimateSvc  estimate.EstimateService
	EventsSvc    events.EventService
	Queue        TaskEnqueuer
}

// Submit gates on availability, recomputes the estimate server-side, persists
// the booking, and enqueues the best-effort coupon usage increment.
func (s *DefaultBookingService) Submit(ctx context.Context, companyID string, in models.BookingInput) (*models.Booking, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	day, err := s.Availability.Day(ctx, companyID, in.MoveDate)
	if err != nil {
		return nil, err
	}
	switch day.Status {
	case models.StatusClosed:
		return nil, utils.NewValidationError("This date is unavailable for booking")
	case models.StatusFull:
		return nil, utils.NewValidationError("This date is fully booked")
	}
	if in.TimeWindow != "" {
		for _, slot := range day.Slots {
			if slot.ID == in.TimeWindow && !slot.Available {
				return nil, utils.NewValidationError("The selected arrival window is full")
			}
		}
	}

	est, err := s.EstimateSvc.Quote(ctx, companyID, models.EstimateInput{
		Bedrooms:      in.Bedrooms,
		MoveSize:      in.HomeSize,
		DistanceMiles: in.DistanceMiles,
		Sqft:          in.Sqft,
		Fullness:      in.Fullness,
		CouponCode:    in.CouponCode,
	})
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		BookingRef:         newBookingRef(),
		Status:             models.BookingPending,
		CustomerName:       in.CustomerName,
		CustomerEmail:      in.CustomerEmail,
		CustomerPhone:      in.CustomerPhone,
		OriginAddress:      in.OriginAddress,
		DestinationAddress: in.DestinationAddress,
		MoveDate:           in.MoveDate,
		TimeWindow:         in.TimeWindow,
		HomeSize:           in.HomeSize,
		Bedrooms:           in.Bedrooms,
		EstimatedHours:     est.EstimatedHours,
		EstimatedPrice:     est.EstimatedPrice,
		DepositAmount:      est.DepositAmount,
		HourlyRate:         est.HourlyRate,
		CrewSize:           est.CrewSize,
		Notes:              in.Notes,
		CreatedAt:          time.Now(),
	}
	if est.CouponApplied {
		booking.CouponCode = coupon.NormalizeCode(in.CouponCode)
	}

	if err := s.Repo.Insert(ctx, booking); err != nil {
		return nil, err
	}

	// The discount was already computed and shown to the customer, so failing
	// to record usage afterward must not void the booking.
	if est.CouponApplied && s.Queue != nil {
		s.enqueueCouponUsage(booking)
	}

	if s.EventsSvc != nil {
		s.EventsSvc.Track(ctx, companyID, models.WidgetEvent{Event: "booking_completed"})
	}

	return &booking, nil
}

func (s *DefaultBookingService) enqueueCouponUsage(booking models.Booking) {
	logger := utils.GetLogger()
	task, opts, err := tasks.NewCouponUsageTask(tasks.CouponUsagePayload{
		CompanyID:  booking.CompanyID,
		Code:       booking.CouponCode,
		BookingRef: booking.BookingRef,
	})
	if err != nil {
		logger.Warn("failed to build coupon usage task",
			zap.String("bookingRef", booking.BookingRef), zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue coupon usage increment",
			zap.String("bookingRef", booking.BookingRef),
			zap.String("code", booking.CouponCode), zap.Error(err))
	}
}

func validateInput(in models.BookingInput) error {
	switch {
	case strings.TrimSpace(in.CustomerName) == "":
		return utils.NewValidationError("Customer name required")
	case strings.TrimSpace(in.CustomerEmail) == "":
		return utils.NewValidationError("Customer email required")
	case strings.TrimSpace(in.OriginAddress) == "":
		return utils.NewValidationError("Origin address required")
	case strings.TrimSpace(in.DestinationAddress) == "":
		return utils.NewValidationError("Destination address required")
	case in.MoveDate == "":
		return utils.NewValidationError("Move date required")
	}
	if _, err := time.Parse("2006-01-02", in.MoveDate); err != nil {
		return utils.NewValidationError("Move date must be YYYY-MM-DD")
	}
	if in.TimeWindow != "" && in.TimeWindow != models.WindowAM && in.TimeWindow != models.WindowPM {
		return utils.NewValidationError("Unknown arrival window")
	}
	return nil
}

// newBookingRef renders a customer-facing reference like "BM-3F2A9C41".
func newBookingRef() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "BM-" + strings.ToUpper(raw[:8])
}
