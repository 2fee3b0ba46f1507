package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/constants"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/infra/pubsub"
	mocks "crave/internal/mocks/usecase"
	"crave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mocks.MockOrderNotifierUsecase) {
	notifier := mocks.NewMockOrderNotifierUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Notifier: notifier,
	}), notifier
}

func pushBody(t *testing.T, event *entity.OrderEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.Envelope
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "processed", wantStatus: http.StatusOK},
		{name: "permanent failure is acknowledged", err: domainerrors.ErrValidationFailed, wantStatus: http.StatusOK},
		{name: "transient failure is redelivered", err: errors.New("connection reset"), wantStatus: http.StatusServiceUnavailable},
		{
			name:       "database failure is redelivered",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "failed to read devices"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifier := newTestPushHandler(t, nil)

			event := &entity.OrderEvent{Type: entity.OrderEventPlaced, OrderNumber: "ORD-1", UserID: "u"}
			call := notifier.EXPECT().ProcessOrderEvent(mock.Anything, mock.MatchedBy(func(e *entity.OrderEvent) bool {
				return e.OrderNumber == "ORD-1" && e.Type == entity.OrderEventPlaced
			}))
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&usecase.NotificationResult{Sent: 1}, nil)
			}

			c, rec := newPushContext(pushBody(t, event, nil))

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_BadData(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	c, rec := newPushContext(`{"message":{"data":"not base64!"}}`)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_RequestIDFromAttributes(t *testing.T) {
	h, notifier := newTestPushHandler(t, nil)

	notifier.EXPECT().
		ProcessOrderEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *entity.OrderEvent) {
			assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&usecase.NotificationResult{}, nil)

	event := &entity.OrderEvent{Type: entity.OrderEventPlaced, RequestID: "req-event"}
	c, _ := newPushContext(pushBody(t, event, map[string]string{"request_id": "req-attr"}))

	require.NoError(t, h.HandlePush(c))
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	h, _ := newTestPushHandler(t, cfg)
	require.NotNil(t, h.auth)

	h.auth.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "http://example.com/push", audience)
		if token != "signed" {
			return nil, errors.New("bad token")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
	}

	c, rec := newPushContext(`{}`)
	c.Request().Header.Set("Authorization", "Bearer forged")

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
func TestPushHandler_NoAuthInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop
	h, _ := newTestPushHandler(t, cfg)

	assert.Nil(t, h.auth)
}

func TestPushAuth_Verify(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		payload *idtoken.Payload
		wantErr bool
	}{
		{name: "valid", header: "Bearer signed", payload: &idtoken.Payload{Issuer: "accounts.google.com"}},
		{name: "lower-case scheme", header: "bearer signed", payload: &idtoken.Payload{Issuer: "https://accounts.google.com"}},
		{name: "missing header", wantErr: true},
		{name: "basic auth", header: "Basic abc", wantErr: true},
		{name: "foreign issuer", header: "Bearer signed", payload: &idtoken.Payload{Issuer: "https://evil.example"}, wantErr: true},
		{
			name:    "unverified email",
			header:  "Bearer signed",
			payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &pushAuth{validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return tt.payload, nil
			}}
			req := httptest.NewRequest(http.MethodPost, "https://worker.example/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			err := auth.verify(req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(errors.New("connection reset")))
	assert.True(t, isRetryable(domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "list devices")))
	assert.False(t, isRetryable(domainerrors.ErrOrderNotFound))
}
