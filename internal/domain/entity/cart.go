package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) line in a shopper's cart.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a cart item joined with the product it points at.
type CartLine struct {
	CartItem
	Product *Product `json:"product"`
}

// Subtotal is price × quantity at the product's current price.
func (l CartLine) Subtotal() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}

	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot is a point-in-time read of a user's cart, newest line first.
type CartSnapshot struct {
	UserID uuid.UUID  `json:"user_id"`
	Lines  []CartLine `json:"lines"`
}

// IsEmpty reports whether the snapshot has no lines.
func (s *CartSnapshot) IsEmpty() bool {
	return s == nil || len(s.Lines) == 0
}

// Total sums every line subtotal.
func (s *CartSnapshot) Total() decimal.Decimal {
	total := decimal.Zero
	if s == nil {
		return total
	}
	for _, line := range s.Lines {
		total = total.Add(line.Subtotal())
	}

	return total
}

// ItemCount is the number of units across all lines.
func (s *CartSnapshot) ItemCount() int {
	count := 0
	if s == nil {
		return count
	}
	for _, line := range s.Lines {
		count += line.Quantity
	}

	return count
}
