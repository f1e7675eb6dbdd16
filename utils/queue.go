package utils

import (
	"movebook/config"

	"github.com/hibiken/asynq"
)

var queueClient *asynq.Client

// QueueRedisOpt returns the Redis connection options shared by the asynq
// client and worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// GetQueueClient returns the shared asynq client for enqueueing background tasks.
func GetQueueClient() *asynq.Client {
	if queueClient == nil {
		queueClient = asynq.NewClient(QueueRedisOpt())
	}
	return queueClient
}
