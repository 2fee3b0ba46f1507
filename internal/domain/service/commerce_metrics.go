package service

import "github.com/shopspring/decimal"

// CommerceMetrics records business counters. Implementations must be safe for
// concurrent use.
type CommerceMetrics interface {
	OrderPlaced(total decimal.Decimal)
	PaymentReconciled(outcome string)
	CartMutated(op string)
}
