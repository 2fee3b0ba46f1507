package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusCompleted))
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusFailed))
	assert.True(t, PaymentStatusFailed.CanTransitionTo(PaymentStatusCompleted))
	assert.False(t, PaymentStatusCompleted.CanTransitionTo(PaymentStatusFailed))
	assert.False(t, PaymentStatusCompleted.CanTransitionTo(PaymentStatusPending))
}

func TestOrderStatus_Display(t *testing.T) {
	assert.Equal(t, "#4a4", OrderStatusDelivered.Display().Color)
	assert.Equal(t, "#07f", OrderStatusShipped.Display().Color)
	assert.Equal(t, "#fa0", OrderStatusProcessing.Display().Color)
	assert.Equal(t, "#f44", OrderStatusCancelled.Display().Color)
	assert.Equal(t, "#999", OrderStatusPending.Display().Color)

	unknown := OrderStatus("returned").Display()
	assert.Equal(t, "#999", unknown.Color)
	assert.Equal(t, "Returned", unknown.Label)
}

func TestShippingAddress_MissingField(t *testing.T) {
	complete := ShippingAddress{
		FullName: "Ada Obi",
		Phone:    "+2348000000000",
		Street:   "1 Marina",
		City:     "Lagos",
		State:    "Lagos",
		Country:  "NG",
	}
	assert.Empty(t, complete.MissingField(), "postal code is optional")

	noCity := complete
	noCity.City = "   "
	assert.Equal(t, "city", noCity.MissingField())

	// The first blank field in form order wins.
	blankPhoneAndCountry := complete
	blankPhoneAndCountry.Phone = ""
	blankPhoneAndCountry.Country = ""
	assert.Equal(t, "phone", blankPhoneAndCountry.MissingField())
}

func TestCartSnapshot_Total(t *testing.T) {
	snapshot := &CartSnapshot{
		Lines: []CartLine{
			{CartItem: CartItem{Quantity: 2}, Product: &Product{Price: decimal.RequireFromString("10.00")}},
			{CartItem: CartItem{Quantity: 1}, Product: &Product{Price: decimal.RequireFromString("5.00")}},
		},
	}

	assert.True(t, decimal.RequireFromString("25.00").Equal(snapshot.Total()))
	assert.Equal(t, 3, snapshot.ItemCount())
	assert.False(t, snapshot.IsEmpty())
	assert.True(t, (&CartSnapshot{}).IsEmpty())
}

func TestOrder_AwaitingPayment(t *testing.T) {
	order := &Order{Status: OrderStatusPending, PaymentStatus: PaymentStatusFailed}
	assert.True(t, order.AwaitingPayment())

	order.PaymentStatus = PaymentStatusCompleted
	assert.False(t, order.AwaitingPayment())

	order = &Order{Status: OrderStatusCancelled, PaymentStatus: PaymentStatusPending}
	assert.False(t, order.AwaitingPayment())
}
