package repository

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when the order number is already taken.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// OrderListOptions pages and filters order listings.
type OrderListOptions struct {
	Status *entity.OrderStatus
	Limit  int
	Offset int
}

// OrderRepository defines the interface for order and order item persistence.
type OrderRepository interface {
	// Create inserts the order header.
	Create(ctx context.Context, order *entity.Order) error

	// CreateItems inserts every item in a single statement.
	CreateItems(ctx context.Context, items []*entity.OrderItem) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List returns every order, newest first.
	List(ctx context.Context, opts OrderListOptions) ([]*entity.Order, error)

	// ListItems returns the items of an order in insertion order.
	ListItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)

	// MarkPaymentCompleted sets payment_status=completed, status=processing and the
	// gateway reference unless the payment is already completed. It reports whether
	// a row changed.
	MarkPaymentCompleted(ctx context.Context, orderID uuid.UUID, reference string) (bool, error)

	// MarkPaymentFailed sets payment_status=failed while the payment is still pending.
	// It reports whether a row changed.
	MarkPaymentFailed(ctx context.Context, orderID uuid.UUID) (bool, error)

	// UpdateStatus moves an order from one status to another. It reports false when
	// the order was no longer in the from status.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to entity.OrderStatus) (bool, error)
}
