package impl

import (
	"context"
	"testing"
	"time"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	mockRepo "crave/internal/mocks/repository"
	mockSvc "crave/internal/mocks/service"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderAdminFixtures struct {
	service     *orderAdminService
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
	receipts    *mockSvc.MockQRCodeService
}

func createTestOrderAdminService(t *testing.T) orderAdminFixtures {
	fx := orderAdminFixtures{
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		receipts:    mockSvc.NewMockQRCodeService(t),
	}

	srv := NewOrderAdminService(OrderAdminServiceParams{
		OrderRepo:   fx.orderRepo,
		ProductRepo: fx.productRepo,
		Publisher:   fx.publisher,
		QRCode:      fx.receipts,
		Logger:      newDiscardLogger(),
	}).(*orderAdminService)
	srv.now = func() time.Time { return fixedNow }
	fx.service = srv

	return fx
}

func TestOrderAdminService_UpdateOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		allowed bool
	}{
		{name: "processing to shipped", from: entity.OrderStatusProcessing, to: entity.OrderStatusShipped, allowed: true},
		{name: "shipped to delivered", from: entity.OrderStatusShipped, to: entity.OrderStatusDelivered, allowed: true},
		{name: "pending to cancelled", from: entity.OrderStatusPending, to: entity.OrderStatusCancelled, allowed: true},
		{name: "processing to cancelled", from: entity.OrderStatusProcessing, to: entity.OrderStatusCancelled, allowed: true},
		{name: "pending to shipped", from: entity.OrderStatusPending, to: entity.OrderStatusShipped},
		{name: "delivered to cancelled", from: entity.OrderStatusDelivered, to: entity.OrderStatusCancelled},
		{name: "cancelled to shipped", from: entity.OrderStatusCancelled, to: entity.OrderStatusShipped},
		{name: "shipped back to pending", from: entity.OrderStatusShipped, to: entity.OrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderAdminService(t)

			ctx := context.Background()
			order := pendingOrder(uuid.New(), "ORD-1", "25.00")
			order.Status = tt.from

			if !tt.allowed {
				fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

				_, err := fx.service.UpdateOrderStatus(ctx, order.ID, tt.to)

				assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderTransition))

				return
			}

			updated := *order
			updated.Status = tt.to
			fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil).Once()
			fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, tt.from, tt.to).Return(true, nil)
			fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(&updated, nil).Once()
			fx.publisher.EXPECT().
				PublishOrderEvent(ctx, mock.MatchedBy(func(e *entity.OrderEvent) bool {
					return e.Type == entity.OrderEventStatusChanged && e.Status == tt.to
				})).
				Return(nil)

			result, err := fx.service.UpdateOrderStatus(ctx, order.ID, tt.to)

			require.NoError(t, err)
			assert.Equal(t, tt.to, result.Status)
		})
	}
}

func TestOrderAdminService_UpdateOrderStatus_ProcessingIsPaymentOnly(t *testing.T) {
	fx := createTestOrderAdminService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatusProcessing)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderTransition))
}

func TestOrderAdminService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderAdminService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatus("lost"))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderAdminService_UpdateOrderStatus_ConcurrentChange(t *testing.T) {
	fx := createTestOrderAdminService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New(), "ORD-1", "25.00")
	order.Status = entity.OrderStatusProcessing
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing, entity.OrderStatusShipped).
		Return(false, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderTransition))
}

func TestOrderAdminService_ListAllOrders(t *testing.T) {
	fx := createTestOrderAdminService(t)

	ctx := context.Background()
	status := entity.OrderStatusShipped
	fx.orderRepo.EXPECT().
		List(ctx, repository.OrderListOptions{Status: &status, Limit: defaultPageSize, Offset: 40}).
		Return([]*entity.Order{}, nil)

	_, err := fx.service.ListAllOrders(ctx, usecase.OrderListQuery{Status: &status, Offset: 40})

	require.NoError(t, err)
}

func TestOrderAdminService_ListAllOrders_BadStatus(t *testing.T) {
	fx := createTestOrderAdminService(t)

	status := entity.OrderStatus("lost")
	_, err := fx.service.ListAllOrders(context.Background(), usecase.OrderListQuery{Status: &status})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderAdminService_ScanReceipt(t *testing.T) {
	fx := createTestOrderAdminService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OrderNumber: "ORD-01J9Z3", Status: entity.OrderStatusProcessing}
	productID := uuid.New()
	items := []*entity.OrderItem{{ID: uuid.New(), OrderID: order.ID, ProductID: productID, Quantity: 2}}

	fx.receipts.EXPECT().ParseOrderQR(`{"type":"order_receipt"}`).Return(order.OrderNumber, nil)
	fx.orderRepo.EXPECT().FindByNumber(ctx, order.OrderNumber).Return(order, nil)
	fx.orderRepo.EXPECT().ListItems(ctx, order.ID).Return(items, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{productID}).Return([]*entity.Product{{ID: productID, Name: "Pen"}}, nil)

	detail, err := fx.service.ScanReceipt(ctx, `{"type":"order_receipt"}`)

	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, detail.OrderNumber)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "Pen", detail.Lines[0].Product.Name)
}

func TestOrderAdminService_ScanReceipt_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		parsed  string
		parse   error
		findErr error
		wantErr error
	}{
		{name: "not a receipt", parse: errors.New("invalid QR code type: ticket"), wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown order", parsed: "ORD-MISSING", findErr: repository.ErrOrderNotFound, wantErr: domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderAdminService(t)

			fx.receipts.EXPECT().ParseOrderQR("payload").Return(tt.parsed, tt.parse)
			if tt.parse == nil {
				fx.orderRepo.EXPECT().FindByNumber(mock.Anything, tt.parsed).Return(nil, tt.findErr)
			}

			_, err := fx.service.ScanReceipt(context.Background(), "payload")

			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
