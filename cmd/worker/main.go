// Command worker receives order events from the Pub/Sub push subscription,
// sends push notifications for them and purges expired sessions.
package main

import (
	"context"

	"crave/config"
	"crave/internal/delivery"
	"crave/internal/delivery/worker"
	"crave/internal/delivery/worker/handler"
	"crave/internal/infra/auth"
	logs "crave/internal/infra/log"
	"crave/internal/infra/metrics"
	"crave/internal/infra/notification"
	"crave/internal/infra/persistence/postgres"
	"crave/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.New,
			postgres.New,
		),
		notifications(),
		sessionPurge(),
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(delivery.Run),
	).Run()
}

// notifications turns order events into FCM pushes.
func notifications() fx.Option {
	return fx.Provide(
		postgres.NewDeviceRepository,
		notification.New,
		impl.NewOrderNotifier,
		handler.NewPushHandler,
	)
}

// sessionPurge deletes expired refresh sessions through the auth use case.
func sessionPurge() fx.Option {
	return fx.Provide(
		postgres.NewUserRepository,
		postgres.NewAdminRepository,
		postgres.NewSessionStore,
		postgres.NewTransactionManager,
		auth.NewBcryptHasher,
		auth.NewJWTService,
		impl.NewAuthService,
		worker.NewSessionPurger,
	)
}
