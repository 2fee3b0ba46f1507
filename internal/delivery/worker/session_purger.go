package worker

import (
	"context"
	"log/slog"
	"time"

	"crave/config"
	"crave/internal/usecase"

	"go.uber.org/fx"
)

// SessionPurgerParams holds dependencies for the session purger
type SessionPurgerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	AuthUC usecase.AuthUsecase
}

// SessionPurger periodically deletes sessions that can no longer authenticate.
type SessionPurger struct {
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSessionPurger registers the purge loop with the worker lifecycle.
func NewSessionPurger(params SessionPurgerParams) *SessionPurger {
	p := &SessionPurger{
		authUC:   params.AuthUC,
		logger:   params.Logger,
		interval: params.Cfg.Auth.SessionPurgeInterval,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			p.cancel = cancel
			p.done = make(chan struct{})
			go p.run(ctx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.cancel()
			select {
			case <-p.done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return p
}

func (p *SessionPurger) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

func (p *SessionPurger) purge(ctx context.Context) {
	if _, err := p.authUC.PurgeExpiredSessions(ctx); err != nil && ctx.Err() == nil {
		p.logger.Error("[Worker] Session purge failed", slog.Any("error", err))
	}
}
