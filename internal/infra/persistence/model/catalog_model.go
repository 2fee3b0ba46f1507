package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID             uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	Name           string                                `gorm:"type:varchar(255);not null"`
	Description    string                                `gorm:"type:text"`
	Price          decimal.Decimal                       `gorm:"type:numeric(12,2);not null"`
	StockQuantity  int                                   `gorm:"not null;default:0"`
	CategoryID     *uuid.UUID                            `gorm:"type:uuid;index"`
	Images         datatypes.JSONSlice[string]           `gorm:"type:jsonb;not null"`
	Specifications datatypes.JSONType[map[string]string] `gorm:"type:jsonb;not null"`
	IsFeatured     bool                                  `gorm:"not null;default:false"`
	IsActive       bool                                  `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"column:image_url;type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
