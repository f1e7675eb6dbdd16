// File: database/repository/company/crud.go
package companyRepo

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

func (r *mongoCompanyRepo) GetBySlug(ctx context.Context, slug string) (*models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var co models.Company
	err := r.companies.FindOne(ctx, bson.M{"slug": slug}).Decode(&co)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company by slug: %w", err)
	}
	return &co, nil
}

func (r *mongoCompanyRepo) GetByID(ctx context.Context, companyID string) (*models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var co models.Company
	err := r.companies.FindOne(ctx, bson.M{"id": companyID}).Decode(&co)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}
	return &co, nil
}

func (r *mongoCompanyRepo) GetSettings(ctx context.Context, companyID string) (*models.CompanySettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var st models.CompanySettings
	err := r.settings.FindOne(ctx, bson.M{"company_id": companyID}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company settings: %w", err)
	}
	return &st, nil
}

func (r *mongoCompanyRepo) UpdateSettings(ctx context.Context, settings models.CompanySettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"company_id": settings.CompanyID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.settings.ReplaceOne(ctx, filter, settings, opts); err != nil {
		return fmt.Errorf("failed to update company settings: %w", err)
	}
	return nil
}
