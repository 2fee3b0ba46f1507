package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ShippingAddressJSON is the snapshot stored on 'orders.shipping_address'.
type ShippingAddressJSON struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code,omitempty"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID                               `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID                               `gorm:"type:uuid;not null;index"`
	OrderNumber      string                                  `gorm:"type:varchar(64);uniqueIndex;not null"`
	TotalAmount      decimal.Decimal                         `gorm:"type:numeric(12,2);not null"`
	Status           string                                  `gorm:"type:varchar(20);not null;default:pending"`
	PaymentStatus    string                                  `gorm:"type:varchar(20);not null;default:pending"`
	PaymentReference *string                                 `gorm:"type:varchar(255)"`
	ShippingAddress  datatypes.JSONType[ShippingAddressJSON] `gorm:"type:jsonb;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
