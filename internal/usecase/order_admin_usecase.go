package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderListQuery pages the admin order list.
type OrderListQuery struct {
	Status *entity.OrderStatus
	Limit  int
	Offset int
}

// OrderAdminUsecase defines order fulfilment for the admin console.
type OrderAdminUsecase interface {
	ListAllOrders(ctx context.Context, query OrderListQuery) ([]*entity.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.OrderDetail, error)

	// ScanReceipt looks up the order behind a scanned receipt QR payload.
	ScanReceipt(ctx context.Context, qrData string) (*entity.OrderDetail, error)

	// UpdateOrderStatus moves an order along the fulfilment state machine.
	// processing is only reachable through a successful payment.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
