// File: database/repository/pricing/crud.go
package pricingRepo

import (
	"context"
	"fmt"
	"time"

	"movebook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPricingRuleRepo) ListByCompany(ctx context.Context, companyID string) ([]models.PricingRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "bedrooms", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.PricingRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("failed to decode pricing rules: %w", err)
	}
	return rules, nil
}

// ReplaceAll deletes the company's rules and reinserts the given set.
func (r *mongoPricingRuleRepo) ReplaceAll(ctx context.Context, companyID string, rules []models.PricingRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"company_id": companyID}); err != nil {
		return fmt.Errorf("failed to clear pricing rules: %w", err)
	}
	if len(rules) == 0 {
		return nil
	}

	docs := make([]interface{}, len(rules))
	for i, rule := range rules {
		if rule.ID == "" {
			rule.ID = uuid.New().String()
		}
		rule.CompanyID = companyID
		docs[i] = rule
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert pricing rules: %w", err)
	}
	return nil
}
