package middleware

import (
	"log/slog"

	deliverycontext "crave/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags each request with an ID and a logger that carries it.
// Well-formed inbound X-Request-Id values are kept so traces span services.
type RequestIDMiddleware struct {
	logger *slog.Logger
	newID  func() string
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
		newID:  uuid.NewString,
	}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := deliverycontext.NormalizeRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			requestID = m.newID()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogAttrs(ctx, m.logger, slog.String("request_id", requestID))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
