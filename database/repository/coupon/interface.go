// File: database/repository/coupon/interface.go
package couponRepo

import (
	"context"

	"movebook/database"
	"movebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CouponRepository manages per-company promo codes. GetActiveByCode expects an
// already upper-cased code and returns (nil, nil) when no active coupon
// matches. IncrementUsage is only called from the background usage worker.
type CouponRepository interface {
	GetActiveByCode(ctx context.Context, companyID, code string) (*models.Coupon, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.Coupon, error)
	Create(ctx context.Context, coupon models.Coupon) error
	Delete(ctx context.Context, companyID, couponID string) error
	IncrementUsage(ctx context.Context, companyID, code string) error
}

type mongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo constructs a new MongoDB CouponRepository.
func NewMongoCouponRepo() CouponRepository {
	db := database.DB()
	return &mongoCouponRepo{
		coll: db.Collection("coupons"),
	}
}
