package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"crave/config"
	"crave/internal/domain/lifecycle"
	"crave/internal/errors"
	"crave/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the storefront database and watches its connection pool.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes (checkout, payment reconciliation) go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config, queryObserverFor(params.Metrics)),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, params.Metrics, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

type poolObserver interface {
	ObserveDBPool(stats sql.DBStats)
}

// queryObserverFor keeps a nil *metrics.Metrics from becoming a non-nil interface.
func queryObserverFor(m *metrics.Metrics) queryObserver {
	if m == nil {
		return nil
	}

	return m
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, m *metrics.Metrics, sqlDB *sql.DB, interval time.Duration) {
	w := &poolWatcher{logger: logger, stats: sqlDB.Stats}
	if m != nil {
		w.observer = m
	}
	w.run(ctx, interval)
}

// poolWatcher samples the pool and reports callers that had to wait for a
// connection since the previous sample.
type poolWatcher struct {
	logger   *slog.Logger
	observer poolObserver
	stats    func() sql.DBStats
	prev     sql.DBStats
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.prev = w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sample(ctx)
		}
	}
}

func (w *poolWatcher) sample(ctx context.Context) {
	cur := w.stats()
	prev := w.prev
	w.prev = cur

	if w.observer != nil {
		w.observer.ObserveDBPool(cur)
	}

	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}
	w.logger.LogAttrs(ctx, level, "Callers waited for a database connection",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
