package impl

import (
	"context"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/service"
	mockRepo "crave/internal/mocks/repository"
	mockSvc "crave/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderEvent(eventType entity.OrderEventType, userID uuid.UUID) *entity.OrderEvent {
	return &entity.OrderEvent{
		Type:          eventType,
		OrderID:       uuid.NewString(),
		OrderNumber:   "ORD-1",
		UserID:        userID.String(),
		Status:        entity.OrderStatusShipped,
		PaymentStatus: entity.PaymentStatusCompleted,
	}
}

func TestOrderNotifier_ProcessOrderEvent_DeactivatesInvalidTokens(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	notifier := NewOrderNotifier(deviceRepo, notificationSvc, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	phone := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token-a", IsActive: true}
	tablet := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token-b", IsActive: true}
	stale := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "token-a", IsActive: true}

	deviceRepo.EXPECT().ListByUser(ctx, userID, true).Return([]*entity.UserDevice{phone, tablet, stale}, nil)
	notificationSvc.EXPECT().
		Push(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"token-a", "token-b"}, msg.Tokens) &&
				msg.Title == "Order Shipped" &&
				msg.Data["order_number"] == "ORD-1"
		})).
		Return(&service.PushReport{Sent: 1, Failed: 1, InvalidTokens: []string{"token-b"}}, nil)
	deviceRepo.EXPECT().Deactivate(ctx, tablet.ID).Return(1, nil)

	result, err := notifier.ProcessOrderEvent(ctx, newTestOrderEvent(entity.OrderEventStatusChanged, userID))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.InvalidTokens)
}

func TestOrderNotifier_ProcessOrderEvent_NoDevices(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifier := NewOrderNotifier(deviceRepo, mockSvc.NewMockNotificationService(t), newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	deviceRepo.EXPECT().ListByUser(ctx, userID, true).Return(nil, nil)

	result, err := notifier.ProcessOrderEvent(ctx, newTestOrderEvent(entity.OrderEventPlaced, userID))

	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestOrderNotifier_ProcessOrderEvent_BadUserID(t *testing.T) {
	notifier := NewOrderNotifier(mockRepo.NewMockDeviceRepository(t), mockSvc.NewMockNotificationService(t), newDiscardLogger())

	event := newTestOrderEvent(entity.OrderEventPlaced, uuid.New())
	event.UserID = "not-a-uuid"

	_, err := notifier.ProcessOrderEvent(context.Background(), event)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderNotifier_ProcessOrderEvent_StoreErrorIsRetryable(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifier := NewOrderNotifier(deviceRepo, mockSvc.NewMockNotificationService(t), newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	deviceRepo.EXPECT().ListByUser(ctx, userID, true).Return(nil, errors.New("connection reset"))

	_, err := notifier.ProcessOrderEvent(ctx, newTestOrderEvent(entity.OrderEventPlaced, userID))

	require.Error(t, err)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestOrderNotifier_ProcessOrderEvent_SendFailureIsReported(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	notifier := NewOrderNotifier(deviceRepo, notificationSvc, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	deviceRepo.EXPECT().
		ListByUser(ctx, userID, true).
		Return([]*entity.UserDevice{{ID: uuid.New(), FCMToken: "token-a"}}, nil)
	notificationSvc.EXPECT().
		Push(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool { return msg.Title == "Payment confirmed" })).
		Return(nil, errors.New("fcm unavailable"))

	result, err := notifier.ProcessOrderEvent(ctx, newTestOrderEvent(entity.OrderEventPaymentCompleted, userID))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
}

func TestNotificationContent_UnknownType(t *testing.T) {
	_, _, ok := notificationContent(&entity.OrderEvent{Type: "order.archived"})

	assert.False(t, ok)
}
