package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crave/config"
	"crave/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *entity.OrderEvent {
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		OrderNumber:   "ORD-01TEST",
		TotalAmount:   decimal.RequireFromString("25"),
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
	event := entity.NewOrderEvent(entity.OrderEventPlaced, order, time.Now())
	event.RequestID = "req-1"

	return event
}

type countingObserver map[string]int

func (o countingObserver) EventPublished(eventType, outcome string) {
	o[eventType+"/"+outcome]++
}

type failingTransport struct{ err error }

func (t failingTransport) send(context.Context, *message) (string, error) { return "", t.err }
func (failingTransport) close() error                                    { return nil }

func TestPublisher_HTTPPushEnvelope(t *testing.T) {
	event := testEvent()

	var got Envelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	observer := countingObserver{}
	publisher := &Publisher{transport: newHTTPPush(srv.URL), observer: observer, logger: discardLogger()}
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, localSubscription, got.Subscription)
	assert.NotEmpty(t, got.Message.MessageID)
	assert.Equal(t, event.OrderID, got.Message.OrderingKey)
	assert.Equal(t, "order.placed", got.Message.Attributes["event_type"])
	assert.Equal(t, "ORD-01TEST", got.Message.Attributes["order_number"])
	assert.Equal(t, 1, observer["order.placed/ok"])

	var decoded entity.OrderEvent
	require.NoError(t, json.Unmarshal(got.Message.Data, &decoded))
	assert.Equal(t, "25.00", decoded.TotalAmount)
	assert.Equal(t, entity.OrderEventPlaced, decoded.Type)
}

func TestPublisher_HTTPPushWorkerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := &Publisher{transport: newHTTPPush(srv.URL), logger: discardLogger()}

	err := publisher.PublishOrderEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestPublisher_CountsFailures(t *testing.T) {
	observer := countingObserver{}
	cause := errors.New("deadline exceeded")
	publisher := &Publisher{transport: failingTransport{err: cause}, observer: observer, logger: discardLogger()}

	err := publisher.PublishOrderEvent(context.Background(), testEvent())

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, observer["order.placed/error"])
}

func TestNewMessage_OmitsEmptyRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	msg, err := newMessage(event)

	require.NoError(t, err)
	_, ok := msg.attributes["request_id"]
	assert.False(t, ok)
	assert.Equal(t, event.OrderID, msg.attributes["order_id"])
	assert.Equal(t, event.OrderID, msg.orderingKey)
}

func TestNewTransport(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		want    any
		wantErr bool
	}{
		{name: "not configured", cfg: nil, want: discard{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}, want: &httpPush{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTransport(context.Background(), tt.cfg, discardLogger())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}
