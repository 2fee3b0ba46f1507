package service

import (
	"context"

	"crave/internal/domain/entity"
)

// EventPublisher hands order lifecycle events to the notification worker.
// Publishing happens after the order write commits; a failure is logged by
// the caller and never rolls the order back.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error
	Close() error
}
