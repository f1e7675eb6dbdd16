package cron

import (
	"context"
	"errors"
	"testing"

	"movebook/models"
	"movebook/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubCouponRepo struct {
	err   error
	calls []string
}

func (s *stubCouponRepo) GetActiveByCode(ctx context.Context, companyID, code string) (*models.Coupon, error) {
	return nil, nil
}

func (s *stubCouponRepo) ListByCompany(ctx context.Context, companyID string) ([]models.Coupon, error) {
	return nil, nil
}

func (s *stubCouponRepo) Create(ctx context.Context, coupon models.Coupon) error {
	return nil
}

func (s *stubCouponRepo) Delete(ctx context.Context, companyID, couponID string) error {
	return nil
}

func (s *stubCouponRepo) IncrementUsage(ctx context.Context, companyID, code string) error {
	s.calls = append(s.calls, companyID+"/"+code)
	return s.err
}

func usageTask(t *testing.T) *asynq.Task {
	t.Helper()
	task, _, err := tasks.NewCouponUsageTask(tasks.CouponUsagePayload{
		CompanyID:  "co-1",
		Code:       "SAVE10",
		BookingRef: "BM-3F2A9C41",
	})
	require.NoError(t, err)
	return task
}

func TestHandleCouponUsageIncrements(t *testing.T) {
	repo := &stubCouponRepo{}
	handler := handleCouponUsageTask(repo)

	require.NoError(t, handler(context.Background(), usageTask(t)))
	assert.Equal(t, []string{"co-1/SAVE10"}, repo.calls)
}

func TestHandleCouponUsageDropsMalformedPayload(t *testing.T) {
	repo := &stubCouponRepo{}
	handler := handleCouponUsageTask(repo)

	task := asynq.NewTask(tasks.TypeCouponIncrementUsage, []byte("{not json"))
	require.NoError(t, handler(context.Background(), task))
	assert.Empty(t, repo.calls)
}

func TestHandleCouponUsageSkipsDeletedCoupon(t *testing.T) {
	repo := &stubCouponRepo{err: mongo.ErrNoDocuments}
	handler := handleCouponUsageTask(repo)

	// A coupon deleted after redemption is not an error worth retrying.
	require.NoError(t, handler(context.Background(), usageTask(t)))
}

func TestHandleCouponUsageRetriesInfrastructureErrors(t *testing.T) {
	repo := &stubCouponRepo{err: errors.New("server selection timeout")}
	handler := handleCouponUsageTask(repo)

	require.Error(t, handler(context.Background(), usageTask(t)))
}
