package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crave/config"
	"crave/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.PaymentGateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Payment: &config.PaymentConfig{
		BaseURL:    srv.URL,
		SecretKey:  "FLWSECK_TEST-abc",
		SecretHash: "hash-123",
	}}
	client, err := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresSecretKey(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.Default())
	assert.Error(t, err)
}

func TestClient_InitiatePayment(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/payments", r.URL.Path)
		assert.Equal(t, "Bearer FLWSECK_TEST-abc", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"status":"success","message":"Hosted Link","data":{"link":"https://checkout.example/pay/xyz"}}`))
	})

	link, err := client.InitiatePayment(context.Background(), service.PaymentRequest{
		TxRef:    "ORD-01ABC",
		Amount:   decimal.RequireFromString("25.00"),
		Currency: "NGN",
		Customer: service.PaymentCustomer{Email: "ada@example.com", Phone: "0800", Name: "Ada"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/pay/xyz", link.URL)
	assert.Equal(t, "ORD-01ABC", link.TxRef)

	assert.Equal(t, "ORD-01ABC", got["tx_ref"])
	assert.InDelta(t, 25.0, got["amount"], 0)
	assert.Equal(t, "NGN", got["currency"])
	customer := got["customer"].(map[string]any)
	assert.Equal(t, "0800", customer["phonenumber"])
}

func TestClient_InitiatePayment_GatewayError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"Invalid currency"}`))
	})

	_, err := client.InitiatePayment(context.Background(), service.PaymentRequest{TxRef: "ORD-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid currency")
}

func TestClient_VerifyTransaction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/transactions/4242/verify", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"success","data":{"id":4242,"tx_ref":"ORD-01ABC","status":"successful","amount":25.5,"currency":"NGN"}}`))
	})

	v, err := client.VerifyTransaction(context.Background(), "4242")
	require.NoError(t, err)
	assert.Equal(t, "4242", v.TransactionID)
	assert.Equal(t, "ORD-01ABC", v.TxRef)
	assert.Equal(t, service.PaymentOutcomeSuccessful, v.Outcome)
	assert.True(t, v.Amount.Equal(decimal.RequireFromString("25.50")))
	assert.Equal(t, "NGN", v.Currency)
}

func TestClient_ParseWebhook(t *testing.T) {
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {})
	body := []byte(`{"event":"charge.completed","data":{"id":99,"tx_ref":"ORD-01ABC","status":"failed"}}`)

	tests := []struct {
		name      string
		signature string
		body      []byte
		wantErr   error
		want      *service.PaymentNotification
	}{
		{
			name:      "valid",
			signature: "hash-123",
			body:      body,
			want:      &service.PaymentNotification{TransactionID: "99", TxRef: "ORD-01ABC", Outcome: service.PaymentOutcomeFailed},
		},
		{
			name:      "legacy top level fields",
			signature: "hash-123",
			body:      []byte(`{"id":7,"txRef":"ORD-OLD","status":"successful"}`),
			want:      &service.PaymentNotification{TransactionID: "7", TxRef: "ORD-OLD", Outcome: service.PaymentOutcomeSuccessful},
		},
		{name: "bad signature", signature: "nope", body: body, wantErr: ErrInvalidSignature},
		{name: "not json", signature: "hash-123", body: []byte("tx_ref=1"), wantErr: ErrMalformedPayload},
		{name: "no reference", signature: "hash-123", body: []byte(`{"data":{"id":1}}`), wantErr: ErrMalformedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.ParseWebhook(tt.signature, tt.body)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeOutcome(t *testing.T) {
	assert.Equal(t, service.PaymentOutcomeSuccessful, normalizeOutcome("SUCCESSFUL"))
	assert.Equal(t, service.PaymentOutcomeFailed, normalizeOutcome("cancelled"))
	assert.Equal(t, service.PaymentOutcomePending, normalizeOutcome(""))
}
