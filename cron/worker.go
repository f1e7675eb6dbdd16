package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	couponRepo "movebook/database/repository/coupon"
	"movebook/services/tasks"
	"movebook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitCouponUsageWorker runs the async worker that applies coupon usage
// increments out-of-band. Increments are best-effort: the booking that caused
// them already succeeded, so a permanently failing increment is logged and
// dropped rather than surfaced.
func InitCouponUsageWorker(repo couponRepo.CouponRepository) {
	srv := asynq.NewServer(
		utils.QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCouponIncrementUsage, handleCouponUsageTask(repo))

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		log.Println("[CouponUsageWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[CouponUsageWorker] failed to start worker: %v", err)
		}
	}()
}

func handleCouponUsageTask(repo couponRepo.CouponRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.CouponUsagePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CouponUsageWorker] invalid payload: %v", err)
			return nil // malformed tasks are not retryable
		}

		err := repo.IncrementUsage(ctx, p.CompanyID, p.Code)
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Coupon deleted between redemption and increment; nothing to record.
			log.Printf("[CouponUsageWorker] coupon %s gone for booking %s", p.Code, p.BookingRef)
			return nil
		}
		if err != nil {
			log.Printf("[CouponUsageWorker] failed to increment %s for booking %s: %v", p.Code, p.BookingRef, err)
			return err // retried up to the task's MaxRetry, then dropped
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	opt := utils.QueueRedisOpt()
	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CouponUsageWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
