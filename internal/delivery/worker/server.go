// Package worker receives order events from Pub/Sub push subscriptions and
// runs the background session purge.
package worker

import (
	"log/slog"
	"net/http"

	"crave/config"
	"crave/internal/delivery"
	"crave/internal/delivery/httpserver"
	"crave/internal/delivery/middleware"
	"crave/internal/delivery/worker/handler"
	"crave/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	PushHandler *handler.PushHandler

	// Requested so the purge loop joins the worker lifecycle
	SessionPurger *SessionPurger
}

// NewServer serves the push endpoint. Stopping it drains in-flight pushes;
// Pub/Sub redelivers anything cut off.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := middleware.NewEcho(params.Logger, params.Cfg)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	e.POST("/push", params.PushHandler.HandlePush)

	return httpserver.New(params.Lc, "worker", params.Cfg.HTTP.Port, e, params.Logger), nil
}
