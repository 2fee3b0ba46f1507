package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"crave/config"
	"crave/internal/domain/constants"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	mockRepo "crave/internal/mocks/repository"
	mockSvc "crave/internal/mocks/service"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to recognise a PNG.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type adminContentFixtures struct {
	service      *adminContentService
	txManager    *mockRepo.MockTransactionManager
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	store        *mockSvc.MockObjectStore
}

func createTestAdminContentService(t *testing.T) adminContentFixtures {
	fx := adminContentFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		store:        mockSvc.NewMockObjectStore(t),
	}

	srv := NewAdminContentService(AdminContentServiceParams{
		TxManager:    fx.txManager,
		ProductRepo:  fx.productRepo,
		CategoryRepo: fx.categoryRepo,
		Store:        fx.store,
		Config: &config.Config{
			Storage: &config.StorageConfig{MaxUploadSize: 1024},
			Catalog: &config.CatalogConfig{MaxPageSize: 50},
		},
		Logger: newDiscardLogger(),
	}).(*adminContentService)
	srv.now = func() time.Time { return fixedNow }
	fx.service = srv

	return fx
}

func TestAdminContentService_ListProducts_IncludesInactive(t *testing.T) {
	fx := createTestAdminContentService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.ProductFilter) bool {
			return f.IncludeInactive && f.Limit == 50 && f.Offset == 0
		})).
		Return([]*entity.Product{}, nil)

	_, err := fx.service.ListProducts(ctx, entity.ProductFilter{Limit: 500, Offset: -3})

	require.NoError(t, err)
}

func TestAdminContentService_CreateProduct(t *testing.T) {
	fx := createTestAdminContentService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "Pen" && p.Price.String() == "12.35" && p.CreatedAt.Equal(fixedNow)
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:          "  Pen ",
		Price:         decimal.RequireFromString("12.345"),
		StockQuantity: 4,
		CategoryID:    &categoryID,
		IsActive:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Pen", product.Name)
	assert.Equal(t, &categoryID, product.CategoryID)
}

func TestAdminContentService_CreateProduct_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ProductInput
	}{
		{name: "blank name", input: &usecase.ProductInput{Name: " "}},
		{name: "negative price", input: &usecase.ProductInput{Name: "Pen", Price: decimal.NewFromInt(-1)}},
		{name: "negative stock", input: &usecase.ProductInput{Name: "Pen", StockQuantity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminContentService(t)

			_, err := fx.service.CreateProduct(context.Background(), tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAdminContentService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestAdminContentService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{Name: "Pen", CategoryID: &categoryID})

	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestAdminContentService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestAdminContentService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, productID, &usecase.ProductInput{Name: "Pen"})

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestAdminContentService_DeleteCategory_InUse(t *testing.T) {
	fx := createTestAdminContentService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProducts := mockRepo.NewMockProductRepository(t)
	runTx(fx.txManager, factory)
	factory.EXPECT().ProductRepo().Return(txProducts)
	txProducts.EXPECT().CountActiveByCategory(ctx, categoryID).Return(int64(2), nil)

	err := fx.service.DeleteCategory(ctx, categoryID)

	require.Error(t, err)
	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CATEGORY_IN_USE", appErr.ErrorCode())
	assert.Equal(t, "2 active products", appErr.Details())
}

func TestAdminContentService_DeleteCategory(t *testing.T) {
	fx := createTestAdminContentService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProducts := mockRepo.NewMockProductRepository(t)
	txCategories := mockRepo.NewMockCategoryRepository(t)
	runTx(fx.txManager, factory)
	factory.EXPECT().ProductRepo().Return(txProducts)
	factory.EXPECT().CategoryRepo().Return(txCategories)
	txProducts.EXPECT().CountActiveByCategory(ctx, categoryID).Return(int64(0), nil)
	txCategories.EXPECT().Delete(ctx, categoryID).Return(nil)

	assert.NoError(t, fx.service.DeleteCategory(ctx, categoryID))
}

func TestAdminContentService_UploadImage(t *testing.T) {
	fx := createTestAdminContentService(t)

	ctx := context.Background()
	wantKey := "1709294400000-summer-sale.png"
	fx.store.EXPECT().
		Upload(ctx, constants.BucketProductImages, wantKey, pngHeader, "image/png").
		Return("https://cdn.test/product-images/"+wantKey, nil)

	url, err := fx.service.UploadImage(ctx, &usecase.ImageUpload{
		Kind:        usecase.ImageKindProduct,
		Filename:    "Summer Sale.png",
		ContentType: "text/plain",
		Data:        pngHeader,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/product-images/"+wantKey, url)
}

func TestAdminContentService_UploadImage_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		upload *usecase.ImageUpload
	}{
		{name: "empty", upload: &usecase.ImageUpload{Kind: usecase.ImageKindProduct}},
		{name: "unknown kind", upload: &usecase.ImageUpload{Kind: "banner", Data: pngHeader}},
		{name: "not an image", upload: &usecase.ImageUpload{Kind: usecase.ImageKindCategory, Data: []byte("hello, plain text")}},
		{name: "too large", upload: &usecase.ImageUpload{
			Kind: usecase.ImageKindCategory,
			Data: append(append([]byte{}, pngHeader...), make([]byte, 2048)...),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminContentService(t)

			_, err := fx.service.UploadImage(context.Background(), tt.upload)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAdminContentService_UploadImage_StoreFailure(t *testing.T) {
	fx := createTestAdminContentService(t)

	ctx := context.Background()
	fx.store.EXPECT().
		Upload(ctx, constants.BucketCategoryImages, mock.Anything, pngHeader, "image/png").
		Return("", errors.New("bucket unavailable"))

	_, err := fx.service.UploadImage(ctx, &usecase.ImageUpload{Kind: usecase.ImageKindCategory, Filename: "a.png", Data: pngHeader})

	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}

func TestImageKey(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	tests := []struct {
		filename string
		want     string
	}{
		{filename: "My Photo (1).PNG", want: "1700000000000-my-photo-1-.png"},
		{filename: `C:\Users\ada\cat.jpg`, want: "1700000000000-cat.jpg"},
		{filename: "../../etc/passwd", want: "1700000000000-passwd"},
		{filename: "", want: "1700000000000-image.png"},
		{filename: "???", want: "1700000000000-image.png"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, imageKey(at, tt.filename, ".png"))
		})
	}

	long := imageKey(at, strings.Repeat("a", 300)+".png", ".png")
	assert.LessOrEqual(t, len(long), len("1700000000000-")+maxImageNameLength)
	assert.True(t, strings.HasSuffix(long, ".png"))
}
