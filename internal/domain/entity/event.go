package entity

import "time"

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventPlaced           OrderEventType = "order.placed"
	OrderEventPaymentCompleted OrderEventType = "order.payment_completed"
	OrderEventPaymentFailed    OrderEventType = "order.payment_failed"
	OrderEventStatusChanged    OrderEventType = "order.status_changed"
)

// OrderEvent is published after an order write commits.
type OrderEvent struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	Type          OrderEventType `json:"type"`
	OrderID       string         `json:"order_id"`
	OrderNumber   string         `json:"order_number"`
	UserID        string         `json:"user_id"`
	Status        OrderStatus    `json:"status"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	TotalAmount   string         `json:"total_amount"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// NewOrderEvent builds an event carrying the order's current state.
func NewOrderEvent(eventType OrderEventType, order *Order, occurredAt time.Time) *OrderEvent {
	return &OrderEvent{
		Type:          eventType,
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID.String(),
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		TotalAmount:   order.TotalAmount.StringFixed(2),
		OccurredAt:    occurredAt,
	}
}
