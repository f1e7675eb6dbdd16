// File: database/repository/pricing/interface.go
package pricingRepo

import (
	"context"

	"movebook/database"
	"movebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PricingRuleRepository manages a company's bedroom-count pricing table.
// The table is replaced wholesale on save; rules have no independent lifecycle.
type PricingRuleRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]models.PricingRule, error)
	ReplaceAll(ctx context.Context, companyID string, rules []models.PricingRule) error
}

type mongoPricingRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRuleRepo constructs a new MongoDB PricingRuleRepository.
func NewMongoPricingRuleRepo() PricingRuleRepository {
	db := database.DB()
	return &mongoPricingRuleRepo{
		coll: db.Collection("pricing_rules"),
	}
}
