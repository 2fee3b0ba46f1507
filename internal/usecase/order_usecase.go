package usecase

import (
	"context"

	"crave/internal/domain/entity"
	"crave/internal/domain/service"

	"github.com/google/uuid"
)

// CheckoutInput is what the shopper submits from the checkout form.
type CheckoutInput struct {
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
}

// CheckoutResult is a placed order plus the link the shopper pays at.
// Payment is nil when the order was placed but the gateway hand-off failed.
type CheckoutResult struct {
	Order   *entity.Order        `json:"order"`
	Items   []*entity.OrderItem  `json:"items"`
	Payment *service.PaymentLink `json:"payment,omitempty"`
}

// PaymentRedirect carries the query parameters of the gateway's browser redirect.
type PaymentRedirect struct {
	Status        string `query:"status"`
	TxRef         string `query:"tx_ref"`
	TransactionID string `query:"transaction_id"`
}

// PaymentResult reports what a gateway callback did to an order.
type PaymentResult struct {
	OrderNumber   string               `json:"order_number"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
}

// OrderUsecase defines the shopper-facing order lifecycle.
type OrderUsecase interface {
	// PlaceOrder turns the user's current cart into an order and hands it to the payment gateway.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*CheckoutResult, error)

	// ReconcilePaymentSuccess marks the order paid and clears its owner's cart.
	// Replaying the same reference is a no-op.
	ReconcilePaymentSuccess(ctx context.Context, orderNumber, reference string) (*entity.Order, error)

	// ReconcilePaymentFailure marks a pending payment failed. The order status is left alone.
	ReconcilePaymentFailure(ctx context.Context, orderNumber string) (*entity.Order, error)

	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.OrderDetail, error)

	// InitiatePayment asks the gateway for a fresh payment link for an unpaid order.
	InitiatePayment(ctx context.Context, userID, orderID uuid.UUID) (*service.PaymentLink, error)

	// OrderQRCode renders the receipt QR code of an order as PNG.
	OrderQRCode(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)

	// HandleGatewayWebhook authenticates and applies a gateway webhook.
	HandleGatewayWebhook(ctx context.Context, signature string, body []byte) (*PaymentResult, error)

	// HandleGatewayRedirect applies the result the gateway put on the shopper's redirect.
	HandleGatewayRedirect(ctx context.Context, redirect PaymentRedirect) (*PaymentResult, error)
}
