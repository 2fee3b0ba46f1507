// Command crave serves the storefront, admin and payment callback APIs.
package main

import (
	"context"

	"crave/config"
	"crave/internal/delivery"
	"crave/internal/delivery/api"
	apimiddleware "crave/internal/delivery/api/middleware"
	"crave/internal/delivery/api/router/handler"
	"crave/internal/domain/service"
	"crave/internal/infra/auth"
	logs "crave/internal/infra/log"
	"crave/internal/infra/metrics"
	"crave/internal/infra/ordernumber"
	"crave/internal/infra/payment"
	"crave/internal/infra/persistence/postgres"
	"crave/internal/infra/pubsub"
	"crave/internal/infra/qrcode"
	"crave/internal/infra/storage"
	"crave/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(delivery.Run),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(service.CommerceMetrics)),
		),
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAdminRepository,
			postgres.NewSessionStore,
			postgres.NewProfileRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ordernumber.New,
			qrcode.New,
			payment.NewClient,
			pubsub.NewEventPublisher,
			fx.Annotate(
				storage.New,
				fx.As(new(service.ObjectStore)),
				fx.As(new(handler.ImageSource)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewProfileService,
			impl.NewDeviceService,
			impl.NewAdminContentService,
			impl.NewOrderAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewProfileHandler,
			handler.NewPaymentHandler,
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
