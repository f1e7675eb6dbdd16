// File: database/repository/event/crud.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"movebook/models"

	"github.com/google/uuid"
)

func (r *mongoEventRepo) Insert(ctx context.Context, event models.WidgetEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to insert widget event: %w", err)
	}
	return nil
}
