// Package context carries the request ID and the request-scoped logger from
// the delivery layer into use cases and the order events they publish.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyLogger
)

const (
	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = echo.HeaderXRequestID

	echoKeyRequestID = "request_id"

	maxRequestIDLength = 64
)

// NormalizeRequestID returns id when it is safe to echo into headers, logs and
// order events, and "" otherwise.
func NormalizeRequestID(id string) string {
	if id == "" || len(id) > maxRequestIDLength {
		return ""
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return ""
		}
	}

	return id
}

// GetRequestID returns the request ID stored on c, falling back to the one
// carried by the request context.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(keyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLogger returns nil when ctx carries no request-scoped logger.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// WithLogAttrs extends the request-scoped logger, or fallback when there is
// none, with attrs.
func WithLogAttrs(ctx context.Context, fallback *slog.Logger, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}

	return WithLogger(ctx, GetLoggerOrDefault(ctx, fallback).With(args...))
}
