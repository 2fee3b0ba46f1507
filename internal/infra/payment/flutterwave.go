// Package payment talks to the Flutterwave v3 API.
package payment

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crave/config"
	"crave/internal/domain/service"
	"crave/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL  = "https://api.flutterwave.com"
	defaultTimeout  = 15 * time.Second
	maxResponseBody = 1 << 20

	// SignatureHeader carries the secret hash Flutterwave echoes on every webhook.
	SignatureHeader = "verif-hash"
)

var (
	ErrInvalidSignature = service.ErrInvalidWebhookSignature
	ErrMalformedPayload = service.ErrMalformedPaymentPayload
)

// Client implements service.PaymentGateway against Flutterwave.
type Client struct {
	baseURL    string
	secretKey  string
	secretHash string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ service.PaymentGateway = (*Client)(nil)

// NewClient builds the gateway client from payment.* configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Payment == nil || cfg.Payment.SecretKey == "" {
		return nil, errors.New("payment.secretKey must be configured")
	}

	baseURL := cfg.Payment.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Payment.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  cfg.Payment.SecretKey,
		secretHash: cfg.Payment.SecretHash,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

type paymentCustomer struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phonenumber,omitempty"`
	Name        string `json:"name,omitempty"`
}

type paymentRequest struct {
	TxRef       string          `json:"tx_ref"`
	Amount      json.Number     `json:"amount"`
	Currency    string          `json:"currency"`
	RedirectURL string          `json:"redirect_url,omitempty"`
	Customer    paymentCustomer `json:"customer"`
}

// InitiatePayment creates a hosted payment link for the order.
func (c *Client) InitiatePayment(ctx context.Context, req service.PaymentRequest) (*service.PaymentLink, error) {
	body, err := json.Marshal(paymentRequest{
		TxRef:       req.TxRef,
		Amount:      json.Number(req.Amount.StringFixed(2)),
		Currency:    req.Currency,
		RedirectURL: req.RedirectURL,
		Customer: paymentCustomer{
			Email:       req.Customer.Email,
			PhoneNumber: req.Customer.Phone,
			Name:        req.Customer.Name,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode payment request")
	}

	resp, err := c.do(ctx, http.MethodPost, "/v3/payments", body)
	if err != nil {
		return nil, err
	}

	link := gjson.GetBytes(resp, "data.link").String()
	if link == "" {
		return nil, errors.Wrap(ErrMalformedPayload, "payment link missing")
	}

	c.logger.InfoContext(ctx, "Payment link created", slog.String("tx_ref", req.TxRef))

	return &service.PaymentLink{TxRef: req.TxRef, URL: link}, nil
}

// VerifyTransaction fetches the final state of a transaction by its gateway id.
func (c *Client) VerifyTransaction(ctx context.Context, transactionID string) (*service.PaymentVerification, error) {
	if transactionID == "" {
		return nil, errors.Wrap(ErrMalformedPayload, "transaction id missing")
	}

	resp, err := c.do(ctx, http.MethodGet, "/v3/transactions/"+url.PathEscape(transactionID)+"/verify", nil)
	if err != nil {
		return nil, err
	}

	data := gjson.GetBytes(resp, "data")
	if !data.Exists() {
		return nil, errors.Wrap(ErrMalformedPayload, "verification data missing")
	}

	amount, err := decimal.NewFromString(data.Get("amount").Raw)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedPayload, "verification amount invalid")
	}

	return &service.PaymentVerification{
		TransactionID: data.Get("id").String(),
		TxRef:         data.Get("tx_ref").String(),
		Outcome:       normalizeOutcome(data.Get("status").String()),
		Amount:        amount,
		Currency:      data.Get("currency").String(),
	}, nil
}

// ParseWebhook checks the verif-hash header and extracts the charge reference.
func (c *Client) ParseWebhook(signature string, body []byte) (*service.PaymentNotification, error) {
	if c.secretHash == "" || subtle.ConstantTimeCompare([]byte(signature), []byte(c.secretHash)) != 1 {
		return nil, ErrInvalidSignature
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.Wrap(ErrMalformedPayload, "webhook body is not JSON")
	}

	data := gjson.GetBytes(body, "data")
	txRef := data.Get("tx_ref").String()
	if txRef == "" {
		// Older webhook versions put the fields at the top level.
		data = gjson.ParseBytes(body)
		txRef = data.Get("txRef").String()
	}
	if txRef == "" {
		return nil, errors.Wrap(ErrMalformedPayload, "tx_ref missing")
	}

	return &service.PaymentNotification{
		TransactionID: data.Get("id").String(),
		TxRef:         txRef,
		Outcome:       normalizeOutcome(data.Get("status").String()),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "gateway %s %s failed", method, path)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read gateway response")
	}

	if resp.StatusCode >= http.StatusBadRequest || gjson.GetBytes(payload, "status").String() != "success" {
		return nil, errors.Errorf("gateway %s %s returned %d: %s",
			method, path, resp.StatusCode, gjson.GetBytes(payload, "message").String())
	}

	return payload, nil
}

func normalizeOutcome(status string) service.PaymentOutcome {
	switch strings.ToLower(status) {
	case "successful", "success", "completed":
		return service.PaymentOutcomeSuccessful
	case "failed", "cancelled", "error":
		return service.PaymentOutcomeFailed
	default:
		return service.PaymentOutcomePending
	}
}
