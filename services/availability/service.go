package availability

import (
	"context"
	"time"

	overrideRepo "movebook/database/repository/availability"
	bookingRepo "movebook/database/repository/booking"
	companyRepo "movebook/database/repository/company"
	"movebook/models"
)

// AvailabilityService answers whether dates can be booked. Capacity is derived
// from live booking counts at read time; there is no reserved-slot pool, so
// two submissions racing for the last slot can both pass the check. That race
// is accepted (see BookingService).
type AvailabilityService interface {
	Day(ctx context.Context, companyID, date string) (*models.DayAvailability, error)
	Month(ctx context.Context, companyID, month string) ([]models.DayStatus, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	CompanyRepo  companyRepo.CompanyRepository
	OverrideRepo overrideRepo.OverrideRepository
	BookingRepo  bookingRepo.BookingRepository
}

// statusFor classifies remaining capacity.
func statusFor(remaining int) string {
	switch {
	case remaining <= 0:
		return models.StatusFull
	case remaining == 1:
		return models.StatusLimited
	default:
		return models.StatusAvailable
	}
}

// Day computes the full capacity view for a single date, including per-window
// slots when the company has arrival windows configured.
func (s *DefaultAvailabilityService) Day(ctx context.Context, companyID, date string) (*models.DayAvailability, error) {
	settings, err := s.loadSettings(ctx, companyID)
	if err != nil {
		return nil, err
	}

	ov, err := s.OverrideRepo.GetByDate(ctx, companyID, date)
	if err != nil {
		return nil, err
	}
	if ov != nil && !ov.Available {
		// Closed days short-circuit: no counting, no slots.
		return &models.DayAvailability{
			Date:   date,
			Status: models.StatusClosed,
			Slots:  []models.TimeWindowSlot{},
		}, nil
	}

	dayMax := settings.MaxMovesPerDay
	if ov != nil && ov.MaxMoves != nil {
		dayMax = *ov.MaxMoves
	}

	booked, err := s.BookingRepo.CountActiveByDate(ctx, companyID, date)
	if err != nil {
		return nil, err
	}

	slots := []models.TimeWindowSlot{}
	if settings.DefaultTimeWindow != "" {
		amBooked, err := s.BookingRepo.CountActiveByWindow(ctx, companyID, date, models.WindowAM)
		if err != nil {
			return nil, err
		}
		slots = append(slots, models.TimeWindowSlot{
			ID:        models.WindowAM,
			Label:     settings.DefaultTimeWindow,
			Available: amBooked < settings.MaxMovesAM,
			Booked:    amBooked,
			Capacity:  settings.MaxMovesAM,
		})
	}
	if settings.SecondaryWindowEnabled && settings.SecondaryTimeWindow != "" {
		pmBooked, err := s.BookingRepo.CountActiveByWindow(ctx, companyID, date, models.WindowPM)
		if err != nil {
			return nil, err
		}
		slots = append(slots, models.TimeWindowSlot{
			ID:        models.WindowPM,
			Label:     settings.SecondaryTimeWindow,
			Available: pmBooked < settings.MaxMovesPM,
			Booked:    pmBooked,
			Capacity:  settings.MaxMovesPM,
		})
	}

	remaining := dayMax - booked
	return &models.DayAvailability{
		Date:      date,
		Available: remaining > 0,
		Status:    statusFor(remaining),
		Remaining: remaining,
		Capacity:  dayMax,
		Booked:    booked,
		Slots:     slots,
	}, nil
}

// Month computes per-day statuses from the first of the given month ("2006-01")
// through 42 days out, enough to fill any six-week calendar view. Overrides and
// booking counts are fetched with one range query each.
func (s *DefaultAvailabilityService) Month(ctx context.Context, companyID, month string) ([]models.DayStatus, error) {
	settings, err := s.loadSettings(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var start time.Time
	if month != "" {
		start, err = time.Parse("2006-01", month)
		if err != nil {
			return nil, err
		}
	} else {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	end := start.AddDate(0, 0, 42)
	from := start.Format("2006-01-02")
	to := end.Format("2006-01-02")

	overrides, err := s.OverrideRepo.ListRange(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	overrideByDate := make(map[string]models.AvailabilityOverride, len(overrides))
	for _, ov := range overrides {
		overrideByDate[ov.Date] = ov
	}

	counts, err := s.BookingRepo.CountActiveInRange(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	var days []models.DayStatus
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		booked := counts[date]

		dayMax := settings.MaxMovesPerDay
		ov, hasOverride := overrideByDate[date]
		if hasOverride && ov.MaxMoves != nil {
			dayMax = *ov.MaxMoves
		}

		status := statusFor(dayMax - booked)
		if hasOverride && !ov.Available {
			status = models.StatusClosed
		}
		days = append(days, models.DayStatus{
			Date:     date,
			Status:   status,
			Booked:   booked,
			Capacity: dayMax,
		})
	}
	return days, nil
}

func (s *DefaultAvailabilityService) loadSettings(ctx context.Context, companyID string) (models.CompanySettings, error) {
	st, err := s.CompanyRepo.GetSettings(ctx, companyID)
	if err != nil {
		return models.CompanySettings{}, err
	}
	if st == nil {
		return models.DefaultSettings(companyID), nil
	}
	st.Normalize()
	return *st, nil
}
