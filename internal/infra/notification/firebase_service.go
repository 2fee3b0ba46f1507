// Package notification sends order updates to customer devices over Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"crave/config"
	"crave/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit for one multicast request.
const maxMulticastTokens = 500

// fcmClient is the slice of *messaging.Client the service uses.
type fcmClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client fcmClient
	logger *slog.Logger
}

// Params defines the dependencies for the notification service.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New returns the Firebase sender, or a logging no-op when firebase is not configured.
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications are logged only")

		return &noopNotifier{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg, params.Logger)
}

func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// Push sends a single message for one token and multicasts in chunks of 500 otherwise.
func (s *firebaseService) Push(ctx context.Context, msg *service.PushMessage) (*service.PushReport, error) {
	report := &service.PushReport{InvalidTokens: make([]string, 0)}
	if len(msg.Tokens) == 0 {
		return report, nil
	}

	notification := &messaging.Notification{Title: msg.Title, Body: msg.Body}

	if len(msg.Tokens) == 1 {
		token := msg.Tokens[0]
		_, err := s.client.Send(ctx, &messaging.Message{Token: token, Notification: notification, Data: msg.Data})
		switch {
		case err == nil:
			report.Sent = 1
		case isInvalidToken(err):
			report.Failed = 1
			report.InvalidTokens = append(report.InvalidTokens, token)
		case messaging.IsInternal(err), messaging.IsUnavailable(err), messaging.IsQuotaExceeded(err):
			return report, errors.Wrap(err, "failed to send notification")
		default:
			report.Failed = 1
		}

		return report, nil
	}

	for start := 0; start < len(msg.Tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(msg.Tokens))
		chunk := msg.Tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens:       chunk,
			Notification: notification,
			Data:         msg.Data,
		})
		if err != nil {
			return report, errors.Wrap(err, "failed to send multicast notification")
		}

		report.Sent += response.SuccessCount
		report.Failed += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error != nil && isInvalidToken(sendResponse.Error) {
				report.InvalidTokens = append(report.InvalidTokens, chunk[idx])
			}
		}
	}

	return report, nil
}

func isInvalidToken(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

// noopNotifier is used when Firebase credentials are absent.
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) Push(ctx context.Context, msg *service.PushMessage) (*service.PushReport, error) {
	n.logger.DebugContext(ctx, "[NoopNotifier] Skipping push", slog.String("title", msg.Title), slog.Int("tokens", len(msg.Tokens)))

	return &service.PushReport{Sent: len(msg.Tokens)}, nil
}
