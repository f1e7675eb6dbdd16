// File: database/repository/event/interface.go
package eventRepo

import (
	"context"

	"movebook/database"
	"movebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository stores widget funnel events.
type EventRepository interface {
	Insert(ctx context.Context, event models.WidgetEvent) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	db := database.DB()
	return &mongoEventRepo{
		coll: db.Collection("widget_events"),
	}
}
