package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/constants"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/infra/pubsub"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler turns Pub/Sub push deliveries into order notifications.
type PushHandler struct {
	auth     *pushAuth
	logger   *slog.Logger
	notifier usecase.OrderNotifierUsecase
}

type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier usecase.OrderNotifierUsecase
}

// NewPushHandler requires push authentication for Google subscriptions
// outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:   params.Logger,
		notifier: params.Notifier,
	}

	cfg := params.Config
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop {
		h.auth = &pushAuth{validate: idtoken.Validate}
	}

	return h
}

// HandlePush acknowledges with 200, including events that can never succeed,
// and answers 503 to have Pub/Sub redeliver.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.auth != nil {
		if err := h.auth.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	envelope, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("[Worker] Malformed push", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := pushRequestID(c.Request().Context(), envelope, event)
	logger := h.logger.With(slog.String("request_id", requestID), slog.String("order_number", event.OrderNumber))
	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.Info("[Worker] Processing order event", slog.String("type", string(event.Type)))

	result, err := h.notifier.ProcessOrderEvent(ctx, event)
	if err != nil {
		retryable := isRetryable(err)
		logger.Error("[Worker] Order event failed", slog.Any("error", err), slog.Bool("retryable", retryable))
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	logger.Info("[Worker] Order event processed",
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return c.NoContent(http.StatusOK)
}

// decodePush binds the envelope; message.data is base64 on the wire and the
// []byte field decodes it.
func decodePush(c echo.Context) (*pubsub.Envelope, *entity.OrderEvent, error) {
	var envelope pubsub.Envelope
	if err := c.Bind(&envelope); err != nil {
		return nil, nil, errors.Wrap(err, "envelope")
	}

	var event entity.OrderEvent
	if err := json.Unmarshal(envelope.Message.Data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "order event")
	}

	return &envelope, &event, nil
}

// isRetryable treats domain errors as permanent, except database failures.
func isRetryable(err error) bool {
	var dbErr *domainerrors.DatabaseExecuteError
	if errors.As(err, &dbErr) {
		return true
	}

	var appErr domainerrors.AppError

	return !errors.As(err, &appErr)
}

// pushRequestID prefers the message attribute, then the event, then the
// X-Request-Id the middleware stored, and mints one as a last resort.
func pushRequestID(ctx context.Context, envelope *pubsub.Envelope, event *entity.OrderEvent) string {
	candidates := []string{
		envelope.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	}
	for _, candidate := range candidates {
		if id := deliverycontext.NormalizeRequestID(candidate); id != "" {
			return id
		}
	}

	return uuid.NewString()
}
