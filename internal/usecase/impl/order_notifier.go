package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/domain/service"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type orderNotifier struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewOrderNotifier creates the worker-side use case that fans order events out to devices.
func NewOrderNotifier(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.OrderNotifierUsecase {
	return &orderNotifier{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (n *orderNotifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}

// ProcessOrderEvent notifies the order owner's active devices. Tokens reported
// invalid by the push provider are deactivated. Malformed events fail with a
// domain error; store failures are returned as-is so the delivery can retry.
func (n *orderNotifier) ProcessOrderEvent(ctx context.Context, event *entity.OrderEvent) (*usecase.NotificationResult, error) {
	if event == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event is empty")
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user_id is not a UUID")
	}

	title, body, ok := notificationContent(event)
	if !ok {
		n.log(ctx).Info("Order event type has no notification", slog.String("type", string(event.Type)))

		return &usecase.NotificationResult{}, nil
	}

	devices, err := n.deviceRepo.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}
	if len(devices) == 0 {
		n.log(ctx).Info("No devices to notify", slog.String("orderNumber", event.OrderNumber))

		return &usecase.NotificationResult{}, nil
	}

	byToken := make(map[string]*entity.UserDevice, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if _, seen := byToken[device.FCMToken]; seen {
			continue
		}
		byToken[device.FCMToken] = device
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"type":           string(event.Type),
		"order_id":       event.OrderID,
		"order_number":   event.OrderNumber,
		"status":         string(event.Status),
		"payment_status": string(event.PaymentStatus),
	}

	report, err := n.notificationSvc.Push(ctx, &service.PushMessage{
		Tokens: tokens,
		Title:  title,
		Body:   body,
		Data:   data,
	})
	if err != nil {
		n.log(ctx).Error("Failed to send order notification",
			slog.String("orderNumber", event.OrderNumber),
			slog.Any("error", err),
		)

		return &usecase.NotificationResult{Failed: len(tokens)}, nil
	}

	n.deactivateInvalidTokens(ctx, report.InvalidTokens, byToken)

	n.log(ctx).Info("Order notification sent",
		slog.String("orderNumber", event.OrderNumber),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("invalid", len(report.InvalidTokens)),
	)

	return &usecase.NotificationResult{
		Sent:          report.Sent,
		Failed:        report.Failed,
		InvalidTokens: len(report.InvalidTokens),
	}, nil
}

func (n *orderNotifier) deactivateInvalidTokens(ctx context.Context, invalidTokens []string, byToken map[string]*entity.UserDevice) {
	ids := make([]uuid.UUID, 0, len(invalidTokens))
	for _, token := range invalidTokens {
		if device, ok := byToken[token]; ok {
			ids = append(ids, device.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	if _, err := n.deviceRepo.Deactivate(ctx, ids...); err != nil {
		n.log(ctx).Warn("Failed to deactivate devices with invalid tokens",
			slog.Int("devices", len(ids)),
			slog.Any("error", err),
		)
	}
}

func notificationContent(event *entity.OrderEvent) (title, body string, ok bool) {
	switch event.Type {
	case entity.OrderEventPlaced:
		return "Order received", fmt.Sprintf("We received order %s.", event.OrderNumber), true
	case entity.OrderEventPaymentCompleted:
		return "Payment confirmed", fmt.Sprintf("Payment for order %s was successful.", event.OrderNumber), true
	case entity.OrderEventPaymentFailed:
		return "Payment failed", fmt.Sprintf("Payment for order %s did not go through. You can retry from your orders.", event.OrderNumber), true
	case entity.OrderEventStatusChanged:
		return "Order " + event.Status.Display().Label,
			fmt.Sprintf("Your order %s is now %s.", event.OrderNumber, event.Status.Display().Label), true
	default:
		return "", "", false
	}
}
