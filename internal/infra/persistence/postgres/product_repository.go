package postgres

import (
	"context"
	"strings"

	"crave/internal/domain/entity"
	domainerrors "crave/internal/domain/errors"
	"crave/internal/domain/repository"
	"crave/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate product id")
		}
		product.ID = id
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return productWriteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "stock_quantity", "category_id",
			"images", "specifications", "is_featured", "is_active", "updated_at").
		Updates(productM)
	if result.Error != nil {
		return productWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductsDomain(productModels), nil
}

func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(search)+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductsDomain(productModels), nil
}

func (repo *productRepository) CountActiveByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

func productWriteError(err error, msg string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrCategoryNotFound.WrapMessage("product references an unknown category")
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("price and stock must not be negative")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

// escapeLike stops user input from acting as LIKE wildcards.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := []string(data.Images)
	if images == nil {
		images = []string{}
	}
	specs := data.Specifications.Data()
	if specs == nil {
		specs = map[string]string{}
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		StockQuantity:  data.StockQuantity,
		CategoryID:     data.CategoryID,
		Images:         images,
		Specifications: specs,
		IsFeatured:     data.IsFeatured,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toProductsDomain(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}
	specs := data.Specifications
	if specs == nil {
		specs = map[string]string{}
	}

	return &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		StockQuantity:  data.StockQuantity,
		CategoryID:     data.CategoryID,
		Images:         datatypes.JSONSlice[string](images),
		Specifications: datatypes.NewJSONType(specs),
		IsFeatured:     data.IsFeatured,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
