package pubsub

import (
	"context"
	"log/slog"

	"crave/config"
	"crave/internal/domain/constants"
	"crave/internal/domain/entity"
	"crave/internal/domain/service"
	"crave/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type transport interface {
	send(ctx context.Context, msg *message) (id string, err error)
	close() error
}

type publishObserver interface {
	EventPublished(eventType, outcome string)
}

// Publisher turns order events into messages and hands them to a transport.
type Publisher struct {
	transport transport
	observer  publishObserver
	logger    *slog.Logger
}

var _ service.EventPublisher = (*Publisher)(nil)

type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewEventPublisher picks the transport from pubsub.provider. Without a
// provider events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	t, err := newTransport(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	publisher := &Publisher{transport: t, logger: params.Logger}
	if params.Metrics != nil {
		publisher.observer = params.Metrics
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (transport, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Pub/Sub not configured, order events are dropped")

		return discard{}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Pushing order events to the local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return newHTTPPush(cfg.LocalEndpoint), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing order events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return newGoogleTopic(ctx, cfg.ProjectID, cfg.TopicID)
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	id, err := p.transport.send(ctx, msg)
	if p.observer != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		p.observer.EventPublished(string(event.Type), outcome)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s for order %s", event.Type, event.OrderNumber)
	}

	p.logger.DebugContext(ctx, "Order event published",
		slog.String("event_type", string(event.Type)),
		slog.String("order_number", event.OrderNumber),
		slog.String("message_id", id),
	)

	return nil
}

func (p *Publisher) Close() error {
	return p.transport.close()
}

type discard struct{}

func (discard) send(context.Context, *message) (string, error) { return "", nil }
func (discard) close() error                                    { return nil }
