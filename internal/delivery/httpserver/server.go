// Package httpserver runs an echo instance as an fx-managed delivery.
package httpserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"crave/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type Server struct {
	name   string
	addr   string
	echo   *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

type Option func(*Server)

// WithH2C serves cleartext HTTP/2 next to HTTP/1.1.
func WithH2C(idleTimeout time.Duration) Option {
	return func(s *Server) {
		s.h2c = &http2.Server{IdleTimeout: idleTimeout}
	}
}

// New binds to all interfaces on port. Shutdown is registered on lc and
// drains in-flight requests for up to lifecycle.DefaultTimeout.
func New(lc fx.Lifecycle, name string, port int, e *echo.Echo, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(port)),
		echo:   e,
		logger: logger.With(slog.String("server", name)),
	}
	for _, opt := range opts {
		opt(s)
	}

	lc.Append(fx.Hook{OnStop: s.stop})

	return s
}

func (s *Server) Serve(context.Context) error {
	s.logger.Info("Starting HTTP server", slog.String("addr", s.addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
