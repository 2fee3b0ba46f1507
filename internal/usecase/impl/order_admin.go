package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/domain/service"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderAdminService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	receipts    service.QRCodeService
	maxPageSize int
	now         func() time.Time
	logger      *slog.Logger
}

// OrderAdminServiceParams holds dependencies for OrderAdminService, injected by Fx.
type OrderAdminServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderAdminService creates the admin fulfilment use case.
func NewOrderAdminService(params OrderAdminServiceParams) usecase.OrderAdminUsecase {
	maxPageSize := 100
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.MaxPageSize > 0 {
		maxPageSize = params.Config.Catalog.MaxPageSize
	}

	return &orderAdminService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		publisher:   params.Publisher,
		receipts:    params.QRCode,
		maxPageSize: maxPageSize,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *orderAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderAdminService) ListAllOrders(ctx context.Context, query usecase.OrderListQuery) ([]*entity.Order, error) {
	if query.Status != nil && !query.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(*query.Status))
	}

	limit, offset := pageBounds(query.Limit, query.Offset, srv.maxPageSize)
	orders, err := srv.orderRepo.List(ctx, repository.OrderListOptions{
		Status: query.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderAdminService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.OrderDetail, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return loadOrderDetail(ctx, srv.orderRepo, srv.productRepo, order)
}

func (srv *orderAdminService) ScanReceipt(ctx context.Context, qrData string) (*entity.OrderDetail, error) {
	orderNumber, err := srv.receipts.ParseOrderQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("not a crave receipt")
	}

	order, err := findOrderByNumber(ctx, srv.orderRepo, orderNumber)
	if err != nil {
		return nil, err
	}

	return loadOrderDetail(ctx, srv.orderRepo, srv.productRepo, order)
}

// UpdateOrderStatus applies one fulfilment transition. The write is conditional on the
// status read here, so a concurrent change surfaces as an invalid transition.
func (srv *orderAdminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status " + string(status))
	}
	if status == entity.OrderStatusProcessing {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails("processing is only set by a completed payment")
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	from := order.Status
	if from.IsTerminal() {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails(fmt.Sprintf("%s orders are final", from))
	}
	if !from.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails(fmt.Sprintf("%s -> %s", from, status))
	}

	changed, err := srv.orderRepo.UpdateStatus(ctx, orderID, from, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	if !changed {
		return nil, domainerrors.ErrInvalidOrderTransition.WithDetails("order changed concurrently")
	}

	order, err = srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("from", string(from)),
		slog.String("to", string(status)),
	)
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), entity.OrderEventStatusChanged, order, srv.now())

	return order, nil
}

func (srv *orderAdminService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
