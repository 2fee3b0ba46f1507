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
	"go.uber.org/fx"
)

// Cart mutation labels recorded in metrics.
const (
	cartOpAdd    = "add"
	cartOpSet    = "set"
	cartOpRemove = "remove"
	cartOpClear  = "clear"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	metrics     service.CommerceMetrics
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Metrics     service.CommerceMetrics `optional:"true"`
	Logger      *slog.Logger
}

// NewCartService creates the cart store.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		metrics:     metricsOrNoop(params.Metrics),
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem merges the requested quantity into the user's line for the product.
// The stored quantity never exceeds the stock read here.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("add to cart")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductUnavailable.WithDetails(product.Name)
	}
	if product.StockQuantity <= 0 {
		return nil, domainerrors.ErrOutOfStock.WithDetails(product.Name)
	}

	quantity = min(quantity, product.StockQuantity)
	item := &entity.CartItem{UserID: userID, ProductID: productID}

	existing, err := srv.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	switch {
	case errors.Is(err, repository.ErrCartItemNotFound):
		item.Quantity = quantity
	case err != nil:
		return nil, errors.Wrap(err, "failed to find cart item")
	default:
		item.ID = existing.ID
		item.Quantity = min(existing.Quantity+quantity, product.StockQuantity)
	}

	if err := srv.cartRepo.Upsert(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to upsert cart item")
	}

	srv.metrics.CartMutated(cartOpAdd)
	srv.log(ctx).Debug("Cart item added",
		slog.String("userID", userID.String()),
		slog.String("productID", productID.String()),
		slog.Int("requested", quantity),
		slog.Int("quantity", item.Quantity),
	)

	return item, nil
}

// SetQuantity validates against the product's current stock before writing anything.
func (srv *cartService) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails("quantity must be at least 1")
	}

	item, err := srv.cartRepo.FindByID(ctx, userID, itemID)
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, domainerrors.ErrCartItemNotFound.WrapMessage("set quantity")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart item")
	}

	product, err := srv.productRepo.FindByID(ctx, item.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("set quantity")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if quantity > product.StockQuantity {
		return nil, domainerrors.ErrInvalidQuantity.WithDetails(fmt.Sprintf("only %d in stock", product.StockQuantity))
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound.WrapMessage("set quantity")
		}

		return nil, errors.Wrap(err, "failed to update cart item")
	}

	srv.metrics.CartMutated(cartOpSet)
	item.Quantity = quantity

	return item, nil
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if err := srv.cartRepo.Delete(ctx, userID, itemID); err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	srv.metrics.CartMutated(cartOpRemove)

	return nil
}

func (srv *cartService) Snapshot(ctx context.Context, userID uuid.UUID) (*entity.CartSnapshot, error) {
	return loadCartSnapshot(ctx, srv.cartRepo, srv.productRepo, userID)
}

func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) (int64, error) {
	removed, err := srv.cartRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear cart")
	}

	srv.metrics.CartMutated(cartOpClear)

	return removed, nil
}

// loadCartSnapshot reads the cart lines and joins them to their products in memory.
// Lines whose product vanished between the two reads are dropped.
func loadCartSnapshot(
	ctx context.Context,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	userID uuid.UUID,
) (*entity.CartSnapshot, error) {
	items, err := cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	snapshot := &entity.CartSnapshot{UserID: userID, Lines: make([]entity.CartLine, 0, len(items))}
	if len(items) == 0 {
		return snapshot, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		snapshot.Lines = append(snapshot.Lines, entity.CartLine{CartItem: *item, Product: product})
	}

	return snapshot, nil
}
