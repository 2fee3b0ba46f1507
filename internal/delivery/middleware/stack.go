package middleware

import (
	"log/slog"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// NewEcho returns an echo instance with the timeouts from http.timeouts and the
// middleware every crave server runs first: panic recovery, request IDs and
// access logging, in that order.
func NewEcho(logger *slog.Logger, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).Error("Recovered from panic",
				slog.Any("error", err),
				slog.String("stack", string(stack)),
			)

			return err
		},
	}))
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}
