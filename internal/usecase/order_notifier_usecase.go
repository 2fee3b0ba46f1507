package usecase

import (
	"context"

	"crave/internal/domain/entity"
)

// NotificationResult summarizes one fan-out of an order event to devices.
type NotificationResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
}

// OrderNotifierUsecase turns order events into push notifications for the order's owner.
type OrderNotifierUsecase interface {
	ProcessOrderEvent(ctx context.Context, event *entity.OrderEvent) (*NotificationResult, error)
}
