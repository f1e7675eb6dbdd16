package utils

import (
	"movebook/config"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

var eventsProducer sarama.AsyncProducer

// InitKafkaProducer sets up the async producer for widget funnel events.
// Publishing is best-effort: with no brokers configured the producer stays nil
// and events are only persisted.
func InitKafkaProducer() {
	brokers := config.AppConfig.KafkaBrokers
	if len(brokers) == 0 {
		GetLogger().Info("Kafka disabled, widget events will not be published")
		return
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_5_0_0
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewAsyncProducer(brokers, cfg)
	if err != nil {
		GetLogger().Error("Failed to start Kafka producer, continuing without it", zap.Error(err))
		return
	}
	eventsProducer = producer

	// Drain delivery errors so a broker outage never blocks request handling.
	go func() {
		for perr := range producer.Errors() {
			GetLogger().Warn("widget event publish failed", zap.Error(perr.Err))
		}
	}()
}

// GetEventsProducer returns the producer, or nil when publishing is disabled.
func GetEventsProducer() sarama.AsyncProducer {
	return eventsProducer
}

// CloseKafkaProducer flushes and shuts down the producer.
func CloseKafkaProducer() {
	if eventsProducer != nil {
		if err := eventsProducer.Close(); err != nil {
			GetLogger().Warn("error closing Kafka producer", zap.Error(err))
		}
	}
}
