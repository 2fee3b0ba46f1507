package usecase

import (
	"context"

	"crave/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImageKind selects the bucket an upload lands in.
type ImageKind string

const (
	ImageKindProduct  ImageKind = "product"
	ImageKindCategory ImageKind = "category"
)

// ProductInput is a full product record as edited in the admin console.
type ProductInput struct {
	Name           string            `json:"name" validate:"required,max=200"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	StockQuantity  int               `json:"stock_quantity" validate:"gte=0"`
	CategoryID     *uuid.UUID        `json:"category_id,omitempty"`
	Images         []string          `json:"images" validate:"dive,url"`
	Specifications map[string]string `json:"specifications"`
	IsFeatured     bool              `json:"is_featured"`
	IsActive       bool              `json:"is_active"`
}

// CategoryInput is a full category record as edited in the admin console.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// ImageUpload is one file posted to the admin upload endpoint.
type ImageUpload struct {
	Kind        ImageKind
	Filename    string
	ContentType string
	Data        []byte
}

// AdminContentUsecase defines catalog management for the admin console. Deletes are hard deletes.
type AdminContentUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory refuses while an active product still references the category.
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	// UploadImage stores an image under a fresh key and returns its public URL.
	UploadImage(ctx context.Context, upload *ImageUpload) (string, error)
}
