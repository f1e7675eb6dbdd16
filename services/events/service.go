package events

import (
	"context"
	"encoding/json"

	"movebook/config"
	eventRepo "movebook/database/repository/event"
	"movebook/models"
	"movebook/utils"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// EventService records widget funnel events. Persistence failures are logged
// and swallowed; analytics must never break the booking funnel itself.
type EventService interface {
	Track(ctx context.Context, companyID string, event models.WidgetEvent)
}

// DefaultEventService implements EventService.
type DefaultEventService struct {
	Repo     eventRepo.EventRepository
	Producer sarama.AsyncProducer
}

// Track stores the event and, when a producer is configured, publishes it to
// Kafka keyed by company so downstream consumers see per-tenant ordering.
func (s *DefaultEventService) Track(ctx context.Context, companyID string, event models.WidgetEvent) {
	logger := utils.GetLogger()
	event.CompanyID = companyID

	if err := s.Repo.Insert(ctx, event); err != nil {
		logger.Warn("failed to store widget event",
			zap.String("companyID", companyID), zap.String("event", event.Event), zap.Error(err))
		return
	}

	if s.Producer == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Warn("failed to encode widget event", zap.Error(err))
		return
	}
	s.Producer.Input() <- &sarama.ProducerMessage{
		Topic: config.AppConfig.KafkaEventsTopic,
		Key:   sarama.StringEncoder(companyID),
		Value: sarama.ByteEncoder(payload),
	}
}
