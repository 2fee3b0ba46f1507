package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions lists the statuses each status may move to.
// delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range orderTransitions[s] {
		if candidate == next {
			return true
		}
	}

	return false
}

// Display returns the label and colour the storefront shows for s.
func (s OrderStatus) Display() StatusDisplay {
	if d, ok := orderStatusDisplay[s]; ok {
		return d
	}

	return StatusDisplay{Label: titleCase(string(s)), Color: defaultStatusColor}
}

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// IsValid checks if the status is one of the known values.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the payment may move to next.
// A failed payment can be retried, a completed one never changes.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusCompleted || next == PaymentStatusFailed
	case PaymentStatusFailed:
		return next == PaymentStatusCompleted
	default:
		return false
	}
}

// Display returns the label and colour the storefront shows for s.
func (s PaymentStatus) Display() StatusDisplay {
	if d, ok := paymentStatusDisplay[s]; ok {
		return d
	}

	return StatusDisplay{Label: titleCase(string(s)), Color: defaultStatusColor}
}

// StatusDisplay is the presentation metadata for a status badge.
type StatusDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

const defaultStatusColor = "#999"

var orderStatusDisplay = map[OrderStatus]StatusDisplay{
	OrderStatusPending:    {Label: "Pending", Color: defaultStatusColor},
	OrderStatusProcessing: {Label: "Processing", Color: "#fa0"},
	OrderStatusShipped:    {Label: "Shipped", Color: "#07f"},
	OrderStatusDelivered:  {Label: "Delivered", Color: "#4a4"},
	OrderStatusCancelled:  {Label: "Cancelled", Color: "#f44"},
}

var paymentStatusDisplay = map[PaymentStatus]StatusDisplay{
	PaymentStatusPending:   {Label: "Pending", Color: defaultStatusColor},
	PaymentStatusCompleted: {Label: "Completed", Color: "#4a4"},
	PaymentStatusFailed:    {Label: "Failed", Color: "#f44"},
}

func titleCase(s string) string {
	if s == "" {
		return "Unknown"
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// ShippingAddress is the contact and address snapshot copied onto an order.
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code,omitempty"`
}

// MissingField returns the first required field that is blank, in checkout
// form order, or "" when the address is complete. postal_code is optional.
func (a ShippingAddress) MissingField() string {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", a.FullName},
		{"phone", a.Phone},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"country", a.Country},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return field.name
		}
	}

	return ""
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (a ShippingAddress) Trimmed() ShippingAddress {
	return ShippingAddress{
		FullName:   strings.TrimSpace(a.FullName),
		Phone:      strings.TrimSpace(a.Phone),
		Street:     strings.TrimSpace(a.Street),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		Country:    strings.TrimSpace(a.Country),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}
}

// Address drops the contact fields.
func (a ShippingAddress) Address() Address {
	return Address{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

// Order is an immutable-once-paid record of a purchase.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	OrderNumber      string          `json:"order_number"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Status           OrderStatus     `json:"status"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	PaymentReference *string         `json:"payment_reference,omitempty"`
	ShippingAddress  ShippingAddress `json:"shipping_address"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AwaitingPayment reports whether the gateway may still be asked to charge the order.
func (o *Order) AwaitingPayment() bool {
	return o.Status == OrderStatusPending &&
		(o.PaymentStatus == PaymentStatusPending || o.PaymentStatus == PaymentStatusFailed)
}

// OrderItem is a product line captured at order time. Never mutated.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // unit price at order time
	CreatedAt time.Time       `json:"created_at"`
}

// Subtotal is price × quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderLine is an order item joined with the product's current catalog data.
// Product is nil when the product has since been deleted.
type OrderLine struct {
	OrderItem
	Product *Product `json:"product,omitempty"`
}

// OrderDetail is an order with its lines.
type OrderDetail struct {
	Order
	Lines []OrderLine `json:"lines"`
}
