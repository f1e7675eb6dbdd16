// File: database/repository/availability/interface.go
package overrideRepo

import (
	"context"

	"movebook/database"
	"movebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OverrideRepository manages per-date availability exceptions. GetByDate
// returns (nil, nil) when no override exists, meaning the default cap applies.
type OverrideRepository interface {
	GetByDate(ctx context.Context, companyID, date string) (*models.AvailabilityOverride, error)
	ListRange(ctx context.Context, companyID, from, to string) ([]models.AvailabilityOverride, error)
	Upsert(ctx context.Context, override models.AvailabilityOverride) error
	Delete(ctx context.Context, companyID, date string) error
}

type mongoOverrideRepo struct {
	coll *mongo.Collection
}

// NewMongoOverrideRepo constructs a new MongoDB OverrideRepository.
func NewMongoOverrideRepo() OverrideRepository {
	db := database.DB()
	return &mongoOverrideRepo{
		coll: db.Collection("availability_overrides"),
	}
}
