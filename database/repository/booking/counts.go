// File: database/repository/booking/counts.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"movebook/models"

	"go.mongodb.org/mongo-driver/bson"
)

func activeFilter(companyID string) bson.M {
	return bson.M{
		"company_id": companyID,
		"status":     bson.M{"$ne": models.BookingCancelled},
	}
}

func (r *mongoBookingRepo) CountActiveByDate(ctx context.Context, companyID, date string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := activeFilter(companyID)
	filter["move_date"] = date
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return int(n), nil
}

// CountActiveByWindow counts bookings in one arrival window. Bookings with no
// recorded window predate the window feature and count against AM.
func (r *mongoBookingRepo) CountActiveByWindow(ctx context.Context, companyID, date, window string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := activeFilter(companyID)
	filter["move_date"] = date
	if window == models.WindowAM {
		filter["time_window"] = bson.M{"$in": bson.A{models.WindowAM, "", nil}}
	} else {
		filter["time_window"] = window
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by window: %w", err)
	}
	return int(n), nil
}

// CountActiveInRange groups booking counts by move_date for from <= date <= to
// in a single aggregation, so a month view needs one round-trip, not one per day.
func (r *mongoBookingRepo) CountActiveInRange(ctx context.Context, companyID, from, to string) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	match := activeFilter(companyID)
	match["move_date"] = bson.M{"$gte": from, "$lte": to}
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$move_date", "count": bson.M{"$sum": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking counts: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int)
	for cursor.Next(ctx) {
		var row struct {
			Date  string `bson:"_id"`
			Count int    `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode booking count row: %w", err)
		}
		counts[row.Date] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate booking counts: %w", err)
	}
	return counts, nil
}
