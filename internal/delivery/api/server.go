// Package api is the storefront and admin HTTP API.
package api

import (
	"log/slog"

	"crave/config"
	"crave/internal/delivery"
	apimiddleware "crave/internal/delivery/api/middleware"
	"crave/internal/delivery/api/router"
	"crave/internal/delivery/api/validator"
	"crave/internal/delivery/httpserver"
	"crave/internal/delivery/middleware"
	"crave/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	RouterParams router.RouterParams
}

// NewServer builds the API on http.port, speaking HTTP/1.1 and h2c.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := middleware.NewEcho(params.Logger, params.Cfg)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	// Request metrics are labelled by route template
	e.Use(
		apimiddleware.NewMetricsMiddleware(params.Metrics).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
	)

	e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return httpserver.New(params.Lc, "api", params.Cfg.HTTP.Port, e, params.Logger,
		httpserver.WithH2C(params.Cfg.HTTP.Timeouts.IdleTimeout),
	), nil
}
