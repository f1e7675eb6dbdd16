// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"movebook/database"
	"movebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists bookings and answers the capacity counting
// queries the availability engine runs at read time. All counts exclude
// cancelled bookings.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	ListByCompany(ctx context.Context, companyID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, companyID, bookingID, status string) error

	CountActiveByDate(ctx context.Context, companyID, date string) (int, error)
	CountActiveByWindow(ctx context.Context, companyID, date, window string) (int, error)
	CountActiveInRange(ctx context.Context, companyID, from, to string) (map[string]int, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
