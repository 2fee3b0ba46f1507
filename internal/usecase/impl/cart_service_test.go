package impl

import (
	"context"
	"math"
	"testing"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	mockRepo "crave/internal/mocks/repository"
	mockSvc "crave/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     *cartService
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	metrics     *mockSvc.MockCommerceMetrics
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	metrics := mockSvc.NewMockCommerceMetrics(t)

	srv := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Metrics:     metrics,
		Logger:      newDiscardLogger(),
	}).(*cartService)

	return cartServiceFixtures{
		service:     srv,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		metrics:     metrics,
	}
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newProduct("Pen", "10.00", 10)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserAndProduct(ctx, userID, product.ID).Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.ID == uuid.Nil && item.Quantity == 2
		})).
		Return(nil)
	fx.metrics.EXPECT().CartMutated(cartOpAdd).Return()

	item, err := fx.service.AddItem(ctx, userID, product.ID, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, userID, item.UserID)
}

func TestCartService_AddItem_ClampsMergedQuantityToStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newProduct("Pen", "10.00", 3)
	existing := &entity.CartItem{ID: uuid.New(), UserID: userID, ProductID: product.ID, Quantity: 2}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserAndProduct(ctx, userID, product.ID).Return(existing, nil)
	fx.cartRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.ID == existing.ID && item.Quantity == 3
		})).
		Return(nil)
	fx.metrics.EXPECT().CartMutated(cartOpAdd).Return()

	item, err := fx.service.AddItem(ctx, userID, product.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartService_AddItem_HugeQuantityOnExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newProduct("Pen", "10.00", 3)
	existing := &entity.CartItem{ID: uuid.New(), UserID: userID, ProductID: product.ID, Quantity: 2}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserAndProduct(ctx, userID, product.ID).Return(existing, nil)
	fx.cartRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.ID == existing.ID && item.Quantity == 3
		})).
		Return(nil)
	fx.metrics.EXPECT().CartMutated(cartOpAdd).Return()

	item, err := fx.service.AddItem(ctx, userID, product.ID, math.MaxInt)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartService_AddItem_RequestAboveStockOnEmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newProduct("Pen", "10.00", 3)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindByUserAndProduct(ctx, userID, product.ID).Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().CartMutated(cartOpAdd).Return()

	item, err := fx.service.AddItem(ctx, userID, product.ID, 5)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	inactive := newProduct("Old", "1.00", 5)
	inactive.IsActive = false
	soldOut := newProduct("Gone", "1.00", 0)

	tests := []struct {
		name    string
		product *entity.Product
		findErr error
		want    error
	}{
		{name: "missing product", findErr: repository.ErrProductNotFound, want: domainerrors.ErrProductNotFound},
		{name: "inactive product", product: inactive, want: domainerrors.ErrProductUnavailable},
		{name: "out of stock", product: soldOut, want: domainerrors.ErrOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)

			ctx := context.Background()
			productID := uuid.New()
			fx.productRepo.EXPECT().FindByID(ctx, productID).Return(tt.product, tt.findErr)

			_, err := fx.service.AddItem(ctx, uuid.New(), productID, 1)

			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestCartService_AddItem_ZeroQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_SetQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newProduct("Pen", "10.00", 4)
	item := &entity.CartItem{ID: uuid.New(), UserID: userID, ProductID: product.ID, Quantity: 1}

	fx.cartRepo.EXPECT().FindByID(ctx, userID, item.ID).Return(item, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, userID, item.ID, 4).Return(nil)
	fx.metrics.EXPECT().CartMutated(cartOpSet).Return()

	updated, err := fx.service.SetQuantity(ctx, userID, item.ID, 4)

	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
}

func TestCartService_SetQuantity_AboveStockWritesNothing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := newProduct("Pen", "10.00", 4)
	item := &entity.CartItem{ID: uuid.New(), UserID: userID, ProductID: product.ID, Quantity: 1}

	fx.cartRepo.EXPECT().FindByID(ctx, userID, item.ID).Return(item, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.SetQuantity(ctx, userID, item.ID, 5)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_SetQuantity_BelowOne(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.SetQuantity(context.Background(), uuid.New(), uuid.New(), 0)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_SetQuantity_ForeignLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	fx.cartRepo.EXPECT().FindByID(ctx, userID, itemID).Return(nil, repository.ErrCartItemNotFound)

	_, err := fx.service.SetQuantity(ctx, userID, itemID, 1)

	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_Snapshot_DropsVanishedProducts(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	pen := newProduct("Pen", "10.00", 5)
	items := []*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: pen.ID, Quantity: 2},
		{ID: uuid.New(), UserID: userID, ProductID: uuid.New(), Quantity: 1},
	}

	fx.cartRepo.EXPECT().ListByUser(ctx, userID).Return(items, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, mock.MatchedBy(func(ids []uuid.UUID) bool { return len(ids) == 2 })).
		Return([]*entity.Product{pen}, nil)

	snapshot, err := fx.service.Snapshot(ctx, userID)

	require.NoError(t, err)
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, "20.00", snapshot.Total().StringFixed(2))
	assert.Equal(t, 2, snapshot.ItemCount())
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(int64(3), nil)
	fx.metrics.EXPECT().CartMutated(cartOpClear).Return()

	removed, err := fx.service.Clear(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestCartService_RemoveItem_StoreError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	fx.cartRepo.EXPECT().Delete(ctx, userID, itemID).Return(errors.New("db error"))

	err := fx.service.RemoveItem(ctx, userID, itemID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete cart item")
}
