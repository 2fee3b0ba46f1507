package impl

import (
	"crave/internal/domain/service"

	"github.com/shopspring/decimal"
)

type noopMetrics struct{}

func (noopMetrics) OrderPlaced(decimal.Decimal) {}
func (noopMetrics) PaymentReconciled(string)    {}
func (noopMetrics) CartMutated(string)          {}

func metricsOrNoop(m service.CommerceMetrics) service.CommerceMetrics {
	if m == nil {
		return noopMetrics{}
	}

	return m
}
