package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}

type RunParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Run starts every delivery on its own goroutine. The first one that fails
// stops the application with exit code 1 so the OnStop hooks still run.
func Run(ctx context.Context, params RunParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}

			params.Logger.Error("Delivery stopped", slog.Any("error", err))
			if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				params.Logger.Error("Failed to shut down", slog.Any("error", shutdownErr))
				os.Exit(1)
			}
		}()
	}
}
