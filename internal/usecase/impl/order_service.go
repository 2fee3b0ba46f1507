package impl

import (
	"context"
	"log/slog"
	"strings"
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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// maxOrderNumberAttempts bounds retries when a generated order number is already taken.
const maxOrderNumberAttempts = 3

// Reconciliation outcomes recorded in metrics.
const (
	reconcileCompleted = "completed"
	reconcileReplayed  = "replayed"
	reconcileFailed    = "failed"
	reconcileIgnored   = "ignored"
)

type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	numbers     service.OrderNumberGenerator
	gateway     service.PaymentGateway
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	metrics     service.CommerceMetrics
	currency    string
	redirectURL string
	now         func() time.Time
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	ProfileRepo repository.ProfileRepository
	UserRepo    repository.UserRepository
	Numbers     service.OrderNumberGenerator
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	QRService   service.QRCodeService
	Metrics     service.CommerceMetrics `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService creates the order lifecycle manager.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		profileRepo: params.ProfileRepo,
		userRepo:    params.UserRepo,
		numbers:     params.Numbers,
		gateway:     params.Gateway,
		publisher:   params.Publisher,
		qrService:   params.QRService,
		metrics:     metricsOrNoop(params.Metrics),
		currency:    "NGN",
		now:         time.Now,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Payment != nil {
		if params.Config.Payment.Currency != "" {
			srv.currency = params.Config.Payment.Currency
		}
		srv.redirectURL = params.Config.Payment.RedirectURL
	}

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder runs checkout strictly in order: validate, save the profile, write the
// order, write its items in one transaction, then hand the order to the gateway.
// The cart is left alone; it is cleared once the payment reconciles.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	if input == nil {
		input = &usecase.CheckoutInput{}
	}

	snapshot, err := loadCartSnapshot(ctx, srv.cartRepo, srv.productRepo, userID)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart.WrapMessage("checkout")
	}

	address := input.ShippingAddress.Trimmed()
	if field := address.MissingField(); field != "" {
		return nil, domainerrors.ErrInvalidAddress.WithDetails(field)
	}

	if err := checkPurchasable(snapshot); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting checkout",
		slog.String("userID", userID.String()),
		slog.Int("lines", len(snapshot.Lines)),
	)

	profile := &entity.UserProfile{
		UserID:   userID,
		FullName: address.FullName,
		Phone:    address.Phone,
		Address:  address.Address(),
	}
	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile from checkout")
	}

	order, err := srv.createOrder(ctx, userID, snapshot.Total(), address)
	if err != nil {
		return nil, err
	}

	items := orderItemsFromSnapshot(order.ID, snapshot, order.CreatedAt)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().CreateItems(ctx, items)
	})
	if err != nil {
		srv.log(ctx).Error("Order items could not be written, order left in place",
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrPartialOrderWrite.WithDetails(order.OrderNumber), err.Error())
	}

	srv.metrics.OrderPlaced(order.TotalAmount)
	srv.publish(ctx, entity.OrderEventPlaced, order)

	link, err := srv.requestPayment(ctx, order, profile)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Checkout completed",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("total", order.TotalAmount.StringFixed(2)),
	)

	return &usecase.CheckoutResult{Order: order, Items: items, Payment: link}, nil
}

// checkPurchasable rejects snapshots holding inactive products or more units than are in stock.
func checkPurchasable(snapshot *entity.CartSnapshot) error {
	for _, line := range snapshot.Lines {
		if !line.Product.IsActive {
			return domainerrors.ErrProductUnavailable.WithDetails(line.Product.Name)
		}
		if line.Quantity > line.Product.StockQuantity {
			return domainerrors.ErrOutOfStock.WithDetails(line.Product.Name)
		}
	}

	return nil
}

func (srv *orderService) createOrder(ctx context.Context, userID uuid.UUID, total decimal.Decimal, address entity.ShippingAddress) (*entity.Order, error) {
	for attempt := 1; ; attempt++ {
		number, err := srv.numbers.Next()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate order number")
		}

		now := srv.now()
		order := &entity.Order{
			UserID:          userID,
			OrderNumber:     number,
			TotalAmount:     total,
			Status:          entity.OrderStatusPending,
			PaymentStatus:   entity.PaymentStatusPending,
			ShippingAddress: address,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		err = srv.orderRepo.Create(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, repository.ErrDuplicateOrderNumber) || attempt >= maxOrderNumberAttempts {
			return nil, errors.Wrap(err, "failed to create order")
		}

		srv.log(ctx).Warn("Order number collision, retrying", slog.String("orderNumber", number), slog.Int("attempt", attempt))
	}
}

func orderItemsFromSnapshot(orderID uuid.UUID, snapshot *entity.CartSnapshot, createdAt time.Time) []*entity.OrderItem {
	items := make([]*entity.OrderItem, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		items = append(items, &entity.OrderItem{
			OrderID:   orderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
			CreatedAt: createdAt,
		})
	}

	return items
}

// requestPayment hands the order to the gateway. The order stays pending on failure.
func (srv *orderService) requestPayment(ctx context.Context, order *entity.Order, profile *entity.UserProfile) (*service.PaymentLink, error) {
	customer := service.PaymentCustomer{
		Name:  order.ShippingAddress.FullName,
		Phone: order.ShippingAddress.Phone,
	}
	if profile != nil {
		if customer.Name == "" {
			customer.Name = profile.FullName
		}
		if customer.Phone == "" {
			customer.Phone = profile.Phone
		}
	}

	user, err := srv.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPaymentInitiationFailed.WithDetails(order.OrderNumber), err.Error())
	}
	customer.Email = user.Email

	link, err := srv.gateway.InitiatePayment(ctx, service.PaymentRequest{
		TxRef:       order.OrderNumber,
		Amount:      order.TotalAmount,
		Currency:    srv.currency,
		Customer:    customer,
		RedirectURL: srv.redirectURL,
	})
	if err != nil {
		srv.log(ctx).Error("Payment hand-off failed",
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrPaymentInitiationFailed.WithDetails(order.OrderNumber), err.Error())
	}

	return link, nil
}

// ReconcilePaymentSuccess writes the payment and clears the owner's cart in one
// transaction. The payment write only applies to an unpaid order, so replays
// with the same reference change nothing.
func (srv *orderService) ReconcilePaymentSuccess(ctx context.Context, orderNumber, reference string) (*entity.Order, error) {
	if orderNumber == "" || reference == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order number and payment reference are required")
	}

	var (
		order   *entity.Order
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders := repoFactory.OrderRepo()

		current, err := findOrderByNumber(ctx, orders, orderNumber)
		if err != nil {
			return err
		}

		settled, err := settledPayment(current, reference)
		if err != nil || settled {
			order = current

			return err
		}

		changed, err = orders.MarkPaymentCompleted(ctx, current.ID, reference)
		if err != nil {
			return errors.Wrap(err, "failed to mark payment completed")
		}

		if !changed {
			// Another reconciliation got there between the read and the write.
			current, err = findOrderByNumber(ctx, orders, orderNumber)
			if err != nil {
				return err
			}
			order = current
			if _, err := settledPayment(current, reference); err != nil {
				return err
			}

			return nil
		}

		if _, err := repoFactory.CartRepo().DeleteByUser(ctx, current.UserID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		order, err = orders.FindByID(ctx, current.ID)

		return errors.Wrap(err, "failed to reload order")
	})
	if err != nil {
		srv.log(ctx).Warn("Payment success reconciliation failed",
			slog.String("orderNumber", orderNumber),
			slog.Any("error", err),
		)

		return nil, err
	}

	if !changed {
		srv.metrics.PaymentReconciled(reconcileReplayed)
		srv.log(ctx).Info("Payment already reconciled", slog.String("orderNumber", orderNumber))

		return order, nil
	}

	srv.metrics.PaymentReconciled(reconcileCompleted)
	srv.publish(ctx, entity.OrderEventPaymentCompleted, order)
	srv.log(ctx).Info("Payment reconciled",
		slog.String("orderNumber", orderNumber),
		slog.String("reference", reference),
	)

	return order, nil
}

// settledPayment reports whether the order is already paid under reference. It
// fails for orders paid under another reference and for cancelled orders.
func settledPayment(order *entity.Order, reference string) (bool, error) {
	if order.PaymentStatus == entity.PaymentStatusCompleted {
		if order.PaymentReference != nil && *order.PaymentReference == reference {
			return true, nil
		}

		return false, domainerrors.ErrPaymentReferenceConflict.WithDetails(order.OrderNumber)
	}
	if order.Status == entity.OrderStatusCancelled {
		return false, domainerrors.ErrInvalidOrderTransition.WithDetails("order is cancelled")
	}

	return false, nil
}

// ReconcilePaymentFailure records a failed attempt. Paid and cancelled orders are left untouched.
func (srv *orderService) ReconcilePaymentFailure(ctx context.Context, orderNumber string) (*entity.Order, error) {
	order, err := findOrderByNumber(ctx, srv.orderRepo, orderNumber)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus != entity.PaymentStatusPending || order.Status == entity.OrderStatusCancelled {
		srv.metrics.PaymentReconciled(reconcileIgnored)
		srv.log(ctx).Info("Payment failure ignored",
			slog.String("orderNumber", orderNumber),
			slog.String("paymentStatus", string(order.PaymentStatus)),
			slog.String("status", string(order.Status)),
		)

		return order, nil
	}

	changed, err := srv.orderRepo.MarkPaymentFailed(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark payment failed")
	}

	order, err = srv.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	if changed {
		srv.metrics.PaymentReconciled(reconcileFailed)
		srv.publish(ctx, entity.OrderEventPaymentFailed, order)
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.OrderDetail, error) {
	order, err := srv.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	return loadOrderDetail(ctx, srv.orderRepo, srv.productRepo, order)
}

func (srv *orderService) InitiatePayment(ctx context.Context, userID, orderID uuid.UUID) (*service.PaymentLink, error) {
	order, err := srv.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.AwaitingPayment() {
		return nil, domainerrors.ErrOrderNotPayable.WithDetails(order.OrderNumber)
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return srv.requestPayment(ctx, order, profile)
}

func (srv *orderService) OrderQRCode(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderQR(order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render order QR code")
	}

	return png, nil
}

// HandleGatewayWebhook authenticates the webhook, then applies it like a redirect.
func (srv *orderService) HandleGatewayWebhook(ctx context.Context, signature string, body []byte) (*usecase.PaymentResult, error) {
	notification, err := srv.gateway.ParseWebhook(signature, body)
	if errors.Is(err, service.ErrInvalidWebhookSignature) {
		return nil, domainerrors.ErrWebhookUnauthorized.WrapMessage("payment webhook")
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPaymentVerificationFailed.WithDetails("malformed webhook"), err.Error())
	}

	return srv.applyNotification(ctx, notification)
}

// HandleGatewayRedirect trusts nothing on the query string beyond which transaction to verify.
// A failure is only recorded once the gateway confirms it; otherwise the redirect just reads the order.
func (srv *orderService) HandleGatewayRedirect(ctx context.Context, redirect usecase.PaymentRedirect) (*usecase.PaymentResult, error) {
	if redirect.TxRef == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("tx_ref is required")
	}

	outcome := redirectOutcome(redirect.Status)
	if outcome == service.PaymentOutcomeFailed && !srv.gatewayConfirmsFailure(ctx, redirect) {
		outcome = service.PaymentOutcomePending
	}

	return srv.applyNotification(ctx, &service.PaymentNotification{
		TransactionID: redirect.TransactionID,
		TxRef:         redirect.TxRef,
		Outcome:       outcome,
	})
}

func (srv *orderService) gatewayConfirmsFailure(ctx context.Context, redirect usecase.PaymentRedirect) bool {
	if redirect.TransactionID == "" {
		return false
	}

	verification, err := srv.gateway.VerifyTransaction(ctx, redirect.TransactionID)
	if err != nil {
		srv.log(ctx).Warn("Failed to verify redirect failure",
			slog.String("txRef", redirect.TxRef),
			slog.String("transactionID", redirect.TransactionID),
			slog.Any("error", err),
		)

		return false
	}

	return verification.TxRef == redirect.TxRef && verification.Outcome == service.PaymentOutcomeFailed
}

func redirectOutcome(status string) service.PaymentOutcome {
	switch status {
	case "successful", "completed":
		return service.PaymentOutcomeSuccessful
	case "failed", "cancelled":
		return service.PaymentOutcomeFailed
	default:
		return service.PaymentOutcomePending
	}
}

func (srv *orderService) applyNotification(ctx context.Context, notification *service.PaymentNotification) (*usecase.PaymentResult, error) {
	srv.log(ctx).Info("Payment notification received",
		slog.String("txRef", notification.TxRef),
		slog.String("transactionID", notification.TransactionID),
		slog.String("outcome", string(notification.Outcome)),
	)

	var (
		order *entity.Order
		err   error
	)
	switch notification.Outcome {
	case service.PaymentOutcomeSuccessful:
		if err = srv.verifyCharge(ctx, notification); err != nil {
			return nil, err
		}
		order, err = srv.ReconcilePaymentSuccess(ctx, notification.TxRef, notification.TransactionID)
	case service.PaymentOutcomeFailed:
		order, err = srv.ReconcilePaymentFailure(ctx, notification.TxRef)
	default:
		order, err = findOrderByNumber(ctx, srv.orderRepo, notification.TxRef)
	}
	if err != nil {
		return nil, err
	}

	return &usecase.PaymentResult{
		OrderNumber:   order.OrderNumber,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
	}, nil
}

// verifyCharge re-reads a reported success from the gateway before trusting it.
func (srv *orderService) verifyCharge(ctx context.Context, notification *service.PaymentNotification) error {
	if notification.TransactionID == "" {
		return domainerrors.ErrPaymentVerificationFailed.WithDetails("transaction id missing")
	}

	order, err := findOrderByNumber(ctx, srv.orderRepo, notification.TxRef)
	if err != nil {
		return err
	}

	verification, err := srv.gateway.VerifyTransaction(ctx, notification.TransactionID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPaymentVerificationFailed.WithDetails(order.OrderNumber), err.Error())
	}

	switch {
	case verification.Outcome != service.PaymentOutcomeSuccessful:
		return domainerrors.ErrPaymentVerificationFailed.WithDetails("charge is " + string(verification.Outcome))
	case verification.TxRef != order.OrderNumber:
		return domainerrors.ErrPaymentVerificationFailed.WithDetails("reference mismatch")
	case verification.Amount.LessThan(order.TotalAmount):
		return domainerrors.ErrPaymentVerificationFailed.WithDetails("amount below order total")
	case !strings.EqualFold(verification.Currency, srv.currency):
		return domainerrors.ErrPaymentVerificationFailed.WithDetails("currency mismatch")
	}

	return nil
}

func (srv *orderService) ownedOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order belongs to another user")
	}

	return order, nil
}

func (srv *orderService) publish(ctx context.Context, eventType entity.OrderEventType, order *entity.Order) {
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), eventType, order, srv.now())
}

func findOrderByNumber(ctx context.Context, orders repository.OrderRepository, orderNumber string) (*entity.Order, error) {
	order, err := orders.FindByNumber(ctx, orderNumber)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(orderNumber)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// loadOrderDetail joins the order's items to the current catalog in memory.
// Items whose product was deleted keep a nil Product.
func loadOrderDetail(
	ctx context.Context,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	order *entity.Order,
) (*entity.OrderDetail, error) {
	items, err := orders.ListItems(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	found, err := products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(found))
	for _, product := range found {
		byID[product.ID] = product
	}

	detail := &entity.OrderDetail{Order: *order, Lines: make([]entity.OrderLine, 0, len(items))}
	for _, item := range items {
		detail.Lines = append(detail.Lines, entity.OrderLine{OrderItem: *item, Product: byID[item.ProductID]})
	}

	return detail, nil
}

// publishOrderEvent is best effort: the order write already committed.
func publishOrderEvent(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType entity.OrderEventType,
	order *entity.Order,
	at time.Time,
) {
	if publisher == nil {
		return
	}

	event := entity.NewOrderEvent(eventType, order, at)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err),
		)
	}
}
