package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CommerceCounters(t *testing.T) {
	m := New()

	m.OrderPlaced(decimal.RequireFromString("25.00"))
	m.OrderPlaced(decimal.RequireFromString("10.50"))
	m.PaymentReconciled("completed")
	m.PaymentReconciled("completed")
	m.PaymentReconciled("noop")
	m.CartMutated("add")

	assert.InDelta(t, 2, testutil.ToFloat64(m.ordersPlaced), 0)
	assert.InDelta(t, 35.5, testutil.ToFloat64(m.orderValue), 0.0001)
	assert.InDelta(t, 2, testutil.ToFloat64(m.reconciliation.WithLabelValues("completed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.reconciliation.WithLabelValues("noop")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.cartMutations.WithLabelValues("add")), 0)
}

func TestMetrics_RequestStarted(t *testing.T) {
	m := New()

	done := m.RequestStarted(http.MethodGet, "/api/v1/cart")
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpInFlight), 0)

	done(http.StatusOK)
	assert.InDelta(t, 0, testutil.ToFloat64(m.httpInFlight), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/v1/cart", "200")), 0)
}

func TestMetrics_ObserveDBPool(t *testing.T) {
	m := New()

	m.ObserveDBPool(sql.DBStats{OpenConnections: 4, InUse: 3, WaitCount: 7})

	assert.InDelta(t, 4, testutil.ToFloat64(m.dbPoolOpen), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.dbPoolInUse), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(m.dbPoolWaits), 0)
}

func TestMetrics_QueryObserved(t *testing.T) {
	m := New()

	m.QueryObserved("ok")
	m.QueryObserved("ok")
	m.QueryObserved("slow")

	assert.InDelta(t, 2, testutil.ToFloat64(m.dbQueries.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.dbQueries.WithLabelValues("slow")), 0)
}

func TestMetrics_EventPublished(t *testing.T) {
	m := New()

	m.EventPublished("order.placed", "ok")
	m.EventPublished("order.placed", "error")

	assert.InDelta(t, 1, testutil.ToFloat64(m.events.WithLabelValues("order.placed", "error")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.CartMutated("remove")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `crave_cart_mutations_total{op="remove"} 1`)
}
