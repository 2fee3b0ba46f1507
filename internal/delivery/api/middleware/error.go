package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"crave/internal/delivery/api/response"
	deliverycontext "crave/internal/delivery/context"
	domainerrors "crave/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// httpErrorCodes names the framework errors clients can act on.
var httpErrorCodes = map[int]string{
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusTooManyRequests:       "TOO_MANY_REQUESTS",
}

// ErrorMiddleware renders errors returned by handlers in the response envelope
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	status, write := m.render(c, err, logger)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	_ = write()
}

func (m *ErrorMiddleware) render(c echo.Context, err error, logger *slog.Logger) (int, func() error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
			)
		}

		return appErr.HTTPCode(), func() error { return response.AppError(c, appErr) }
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, ok := httpErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		return httpErr.Code, func() error { return response.Error(c, httpErr.Code, code, message, nil) }
	}

	// The client went away; there is nobody to answer.
	if errors.Is(err, context.Canceled) {
		logger.Info("Request cancelled by client", slog.String("path", c.Request().URL.Path))

		return http.StatusServiceUnavailable, func() error { return nil }
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return http.StatusInternalServerError, func() error {
		return response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}
