// File: database/repository/availability/crud.go
package overrideRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoOverrideRepo) GetByDate(ctx context.Context, companyID, date string) (*models.AvailabilityOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ov models.AvailabilityOverride
	err := r.coll.FindOne(ctx, bson.M{"company_id": companyID, "date": date}).Decode(&ov)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability override: %w", err)
	}
	return &ov, nil
}

// ListRange returns all overrides with from <= date <= to in one query, so a
// month view does not issue per-day lookups.
func (r *mongoOverrideRepo) ListRange(ctx context.Context, companyID, from, to string) ([]models.AvailabilityOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"company_id": companyID,
		"date":       bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var overrides []models.AvailabilityOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, fmt.Errorf("failed to decode availability overrides: %w", err)
	}
	return overrides, nil
}

func (r *mongoOverrideRepo) Upsert(ctx context.Context, override models.AvailabilityOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"company_id": override.CompanyID, "date": override.Date}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, override, opts); err != nil {
		return fmt.Errorf("failed to upsert availability override: %w", err)
	}
	return nil
}

func (r *mongoOverrideRepo) Delete(ctx context.Context, companyID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"company_id": companyID, "date": date}); err != nil {
		return fmt.Errorf("failed to delete availability override: %w", err)
	}
	return nil
}
