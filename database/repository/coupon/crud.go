// File: database/repository/coupon/crud.go
package couponRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movebook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDuplicateCode = errors.New("coupon code already exists")

func (r *mongoCouponRepo) GetActiveByCode(ctx context.Context, companyID, code string) (*models.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"company_id": companyID, "code": code, "active": true}
	var coupon models.Coupon
	err := r.coll.FindOne(ctx, filter).Decode(&coupon)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coupon: %w", err)
	}
	return &coupon, nil
}

func (r *mongoCouponRepo) ListByCompany(ctx context.Context, companyID string) ([]models.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coupons: %w", err)
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupons: %w", err)
	}
	return coupons, nil
}

func (r *mongoCouponRepo) Create(ctx context.Context, coupon models.Coupon) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	if coupon.CreatedAt.IsZero() {
		coupon.CreatedAt = time.Now()
	}

	// One code per company.
	dup, err := r.coll.CountDocuments(ctx, bson.M{"company_id": coupon.CompanyID, "code": coupon.Code})
	if err != nil {
		return fmt.Errorf("failed to check coupon code: %w", err)
	}
	if dup > 0 {
		return ErrDuplicateCode
	}

	if _, err := r.coll.InsertOne(ctx, coupon); err != nil {
		return fmt.Errorf("failed to insert coupon: %w", err)
	}
	return nil
}

func (r *mongoCouponRepo) Delete(ctx context.Context, companyID, couponID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"company_id": companyID, "id": couponID})
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementUsage bumps times_used for a redeemed coupon. The increment is
// unguarded: two redemptions racing near the usage cap can both land, which is
// accepted best-effort behavior.
func (r *mongoCouponRepo) IncrementUsage(ctx context.Context, companyID, code string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"company_id": companyID, "code": code}
	update := bson.M{"$inc": bson.M{"times_used": 1}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to increment coupon usage: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
