package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// Query outcomes reported to the queryObserver.
const (
	queryOK        = "ok"
	querySlow      = "slow"
	queryError     = "error"
	queryCancelled = "cancelled"
)

// queryObserver counts statements. *metrics.Metrics satisfies it.
type queryObserver interface {
	QueryObserved(outcome string)
}

// queryLogger routes GORM output through slog, using the request logger when
// the query runs on behalf of an HTTP request or a push delivery.
type queryLogger struct {
	logger   *slog.Logger
	observer queryObserver
	level    logger.LogLevel
	slow     time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config, observer queryObserver) logger.Interface {
	l := &queryLogger{
		logger:   baseLogger,
		observer: observer,
		level:    logger.Warn,
		slow:     defaultSlowQuery,
	}
	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}
		if cfg.Env.Log.SlowQuery > 0 {
			l.slow = cfg.Env.Log.SlowQuery
		}
	}

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace runs after every statement.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	elapsed := time.Since(begin)
	outcome := classifyQuery(err, elapsed, l.slow)
	if l.observer != nil {
		l.observer.QueryObserved(outcome)
	}

	if l.level == logger.Silent {
		return
	}

	var (
		level slog.Level
		msg   string
		extra []slog.Attr
	)
	switch outcome {
	case queryError:
		if l.level < logger.Error {
			return
		}
		level, msg = slog.LevelError, "GORM query failed"
		extra = append(extra, slog.String("error", err.Error()))
	case queryCancelled:
		if l.level < logger.Info {
			return
		}
		level, msg = slog.LevelInfo, "GORM query cancelled"
	case querySlow:
		if l.level < logger.Warn {
			return
		}
		level, msg = slog.LevelWarn, "GORM slow query"
		extra = append(extra, slog.Duration("slow_threshold", l.slow))
	default:
		if l.level < logger.Info {
			return
		}
		level, msg = slog.LevelDebug, "GORM query"
	}

	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.logger
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// classifyQuery treats a missing row as success; repositories map it to
// their own not-found errors.
func classifyQuery(err error, elapsed, slow time.Duration) string {
	switch {
	case err == nil, errors.Is(err, gorm.ErrRecordNotFound):
		if slow > 0 && elapsed > slow {
			return querySlow
		}

		return queryOK
	case errors.Is(err, context.Canceled):
		return queryCancelled
	default:
		return queryError
	}
}
