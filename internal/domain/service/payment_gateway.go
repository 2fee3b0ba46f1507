package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidWebhookSignature is returned when a webhook fails authentication.
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	// ErrMalformedPaymentPayload is returned when a gateway body lacks required fields.
	ErrMalformedPaymentPayload = errors.New("malformed payment payload")
)

// PaymentCustomer is the contact the gateway shows on its hosted page.
type PaymentCustomer struct {
	Email string
	Phone string
	Name  string
}

// PaymentRequest asks the gateway for a hosted payment link.
type PaymentRequest struct {
	TxRef       string // our order number
	Amount      decimal.Decimal
	Currency    string
	Customer    PaymentCustomer
	RedirectURL string
}

// PaymentLink is where the shopper completes the payment.
type PaymentLink struct {
	TxRef string `json:"tx_ref"`
	URL   string `json:"url"`
}

// PaymentOutcome is the gateway's verdict on a charge.
type PaymentOutcome string

const (
	PaymentOutcomeSuccessful PaymentOutcome = "successful"
	PaymentOutcomeFailed     PaymentOutcome = "failed"
	PaymentOutcomePending    PaymentOutcome = "pending"
)

// PaymentVerification is the gateway's authoritative view of a transaction.
type PaymentVerification struct {
	TransactionID string
	TxRef         string
	Outcome       PaymentOutcome
	Amount        decimal.Decimal
	Currency      string
}

// PaymentNotification is a parsed webhook or redirect callback.
type PaymentNotification struct {
	TransactionID string
	TxRef         string
	Outcome       PaymentOutcome
}

// PaymentGateway hands orders to the external payment provider. It never moves money itself.
type PaymentGateway interface {
	InitiatePayment(ctx context.Context, req PaymentRequest) (*PaymentLink, error)

	// VerifyTransaction asks the provider for the final state of a transaction.
	VerifyTransaction(ctx context.Context, transactionID string) (*PaymentVerification, error)

	// ParseWebhook authenticates a webhook by its signature header and decodes the body.
	ParseWebhook(signature string, body []byte) (*PaymentNotification, error)
}
