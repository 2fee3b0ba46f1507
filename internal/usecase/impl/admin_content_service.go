package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"strings"
	"time"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/constants"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/domain/service"
	"crave/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxImageNameLength = 100

var unsafeNameChars = regexp.MustCompile(`[^a-z0-9._-]+`)

type adminContentService struct {
	txManager     repository.TransactionManager
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	store         service.ObjectStore
	maxUploadSize int64
	maxPageSize   int
	now           func() time.Time
	logger        *slog.Logger
}

// AdminContentServiceParams holds dependencies for AdminContentService, injected by Fx.
type AdminContentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Store        service.ObjectStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAdminContentService creates the catalog management use case.
func NewAdminContentService(params AdminContentServiceParams) usecase.AdminContentUsecase {
	srv := &adminContentService{
		txManager:     params.TxManager,
		productRepo:   params.ProductRepo,
		categoryRepo:  params.CategoryRepo,
		store:         params.Store,
		maxUploadSize: 5 << 20,
		maxPageSize:   100,
		now:           time.Now,
		logger:        params.Logger,
	}
	if params.Config != nil {
		if params.Config.Storage != nil && params.Config.Storage.MaxUploadSize > 0 {
			srv.maxUploadSize = params.Config.Storage.MaxUploadSize
		}
		if params.Config.Catalog != nil && params.Config.Catalog.MaxPageSize > 0 {
			srv.maxPageSize = params.Config.Catalog.MaxPageSize
		}
	}

	return srv
}

func (srv *adminContentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts includes inactive products.
func (srv *adminContentService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	filter.IncludeInactive = true
	filter.Limit, filter.Offset = pageBounds(filter.Limit, filter.Offset, srv.maxPageSize)

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *adminContentService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.validateProduct(ctx, input); err != nil {
		return nil, err
	}

	now := srv.now()
	product := applyProductInput(&entity.Product{CreatedAt: now}, input)
	product.UpdatedAt = now

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID.String()), slog.String("name", product.Name))

	return product, nil
}

func (srv *adminContentService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("update product")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.validateProduct(ctx, input); err != nil {
		return nil, err
	}

	product = applyProductInput(product, input)
	product.UpdatedAt = srv.now()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("update product")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct hard-deletes; cart lines referencing the product cascade away.
func (srv *adminContentService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	err := srv.productRepo.Delete(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound.WrapMessage("delete product")
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", productID.String()))

	return nil
}

func (srv *adminContentService) validateProduct(ctx context.Context, input *usecase.ProductInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.StockQuantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock_quantity must not be negative")
	}

	if input.CategoryID != nil {
		_, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WithDetails(input.CategoryID.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to find category")
		}
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) *entity.Product {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price.Round(2)
	product.StockQuantity = input.StockQuantity
	product.CategoryID = input.CategoryID
	product.Images = append([]string(nil), input.Images...)
	product.Specifications = input.Specifications
	product.IsFeatured = input.IsFeatured
	product.IsActive = input.IsActive

	return product
}

func (srv *adminContentService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *adminContentService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   srv.now(),
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *adminContentService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound.WrapMessage("update category")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Description = input.Description
	category.ImageURL = input.ImageURL

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("update category")
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory blocks while active products reference the category. Inactive
// products lose the reference through ON DELETE SET NULL.
func (srv *adminContentService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		active, err := repoFactory.ProductRepo().CountActiveByCategory(ctx, categoryID)
		if err != nil {
			return errors.Wrap(err, "failed to count products in category")
		}
		if active > 0 {
			return domainerrors.ErrCategoryInUse.WithDetails(fmt.Sprintf("%d active products", active))
		}

		err = repoFactory.CategoryRepo().Delete(ctx, categoryID)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("delete category")
		}

		return errors.Wrap(err, "failed to delete category")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Category deleted", slog.String("categoryID", categoryID.String()))

	return nil
}

// UploadImage sniffs the content type from the bytes; the client's claim is ignored.
func (srv *adminContentService) UploadImage(ctx context.Context, upload *usecase.ImageUpload) (string, error) {
	if upload == nil || len(upload.Data) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("image is empty")
	}

	bucket, err := bucketFor(upload.Kind)
	if err != nil {
		return "", err
	}

	if int64(len(upload.Data)) > srv.maxUploadSize {
		return "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("image exceeds %d bytes", srv.maxUploadSize))
	}

	detected := mimetype.Detect(upload.Data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", domainerrors.ErrValidationFailed.WithDetails("file is not an image: " + detected.String())
	}

	key := imageKey(srv.now(), upload.Filename, detected.Extension())

	url, err := srv.store.Upload(ctx, bucket, key, upload.Data, detected.String())
	if err != nil {
		srv.log(ctx).Error("Image upload failed",
			slog.String("bucket", bucket),
			slog.String("key", key),
			slog.Any("error", err),
		)

		return "", errors.Wrap(domainerrors.ErrUploadFailed.WithDetails(key), err.Error())
	}

	srv.log(ctx).Info("Image uploaded", slog.String("bucket", bucket), slog.String("key", key))

	return url, nil
}

func bucketFor(kind usecase.ImageKind) (string, error) {
	switch kind {
	case usecase.ImageKindProduct:
		return constants.BucketProductImages, nil
	case usecase.ImageKindCategory:
		return constants.BucketCategoryImages, nil
	default:
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown image kind " + string(kind))
	}
}

// imageKey builds "<unix millis>-<sanitised name>".
func imageKey(at time.Time, filename, fallbackExt string) string {
	name := strings.ToLower(path.Base(strings.ReplaceAll(filename, `\`, "/")))
	name = unsafeNameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if len(name) > maxImageNameLength {
		name = name[len(name)-maxImageNameLength:]
	}
	if name == "" {
		name = "image" + fallbackExt
	}

	return fmt.Sprintf("%d-%s", at.UnixMilli(), name)
}
