// File: database/repository/company/interface.go
package companyRepo

import (
	"context"

	"movebook/database"
	"movebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CompanyRepository reads tenant records and their pricing settings.
// Lookups return (nil, nil) when no document matches; absence is an expected
// state, not an error.
type CompanyRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Company, error)
	GetByID(ctx context.Context, companyID string) (*models.Company, error)
	GetSettings(ctx context.Context, companyID string) (*models.CompanySettings, error)
	UpdateSettings(ctx context.Context, settings models.CompanySettings) error
}

type mongoCompanyRepo struct {
	companies *mongo.Collection
	settings  *mongo.Collection
}

// NewMongoCompanyRepo constructs a new MongoDB CompanyRepository.
func NewMongoCompanyRepo() CompanyRepository {
	db := database.DB()
	return &mongoCompanyRepo{
		companies: db.Collection("companies"),
		settings:  db.Collection("company_settings"),
	}
}
