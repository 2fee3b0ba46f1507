// Package logs builds the process-wide slog logger from the env config.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"crave/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
}

// New logs JSON to stdout, or text when env.log.pretty is set.
func New(params Params) (*slog.Logger, error) {
	return build(os.Stdout, params.Config)
}

func build(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	handler := slog.Handler(slog.NewJSONHandler(w, opts))
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}

	return logger, nil
}

// parseLogLevel accepts slog's level names in any case, "warning" and empty
// for info.
func parseLogLevel(name string) (slog.Level, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", name)
	}

	return level, nil
}
