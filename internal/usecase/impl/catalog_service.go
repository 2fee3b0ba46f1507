// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"crave/config"
	deliverycontext "crave/internal/delivery/context"
	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPageSize = 20

type catalogService struct {
	productRepo       repository.ProductRepository
	categoryRepo      repository.CategoryRepository
	featuredLimit     int
	homeCategoryLimit int
	maxPageSize       int
	logger            *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService creates the storefront catalog reader.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	srv := &catalogService{
		productRepo:       params.ProductRepo,
		categoryRepo:      params.CategoryRepo,
		featuredLimit:     6,
		homeCategoryLimit: 8,
		maxPageSize:       100,
		logger:            params.Logger,
	}
	if params.Config != nil && params.Config.Catalog != nil {
		srv.featuredLimit = params.Config.Catalog.FeaturedLimit
		srv.homeCategoryLimit = params.Config.Catalog.HomeCategoryLimit
		srv.maxPageSize = params.Config.Catalog.MaxPageSize
	}

	return srv
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Home loads the featured products and the first categories in one call.
func (srv *catalogService) Home(ctx context.Context) (*usecase.HomePage, error) {
	featured, err := srv.productRepo.List(ctx, entity.ProductFilter{
		FeaturedOnly: true,
		Limit:        srv.featuredLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	categories, err := srv.categoryRepo.List(ctx, srv.homeCategoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.HomePage{Featured: featured, Categories: categories}, nil
}

func (srv *catalogService) ListProducts(ctx context.Context, query usecase.ProductQuery) ([]*entity.Product, error) {
	limit, offset := pageBounds(query.Limit, query.Offset, srv.maxPageSize)

	products, err := srv.productRepo.List(ctx, entity.ProductFilter{
		CategoryID:   query.CategoryID,
		Search:       query.Search,
		FeaturedOnly: query.Featured,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct hides inactive products behind the same not-found error as missing ones.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.IsActive {
		srv.log(ctx).Debug("Inactive product requested", slog.String("productID", productID.String()))

		return nil, domainerrors.ErrProductNotFound.WrapMessage("product is inactive")
	}

	return product, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// pageBounds applies the default page size and clamps to maxPageSize.
func pageBounds(limit, offset, maxPageSize int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if maxPageSize > 0 && limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
