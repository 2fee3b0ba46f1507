// Package metrics exposes Prometheus collectors for the storefront.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"crave/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "crave"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight   prometheus.Gauge
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
	orderValue     prometheus.Counter
	reconciliation *prometheus.CounterVec
	cartMutations  *prometheus.CounterVec
	dbPoolOpen     prometheus.Gauge
	dbPoolInUse    prometheus.Gauge
	dbPoolWaits    prometheus.Gauge
	dbQueries      *prometheus.CounterVec
	events         *prometheus.CounterVec
}

var _ service.CommerceMetrics = (*Metrics)(nil)

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders whose header and items were written.",
		}),
		orderValue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "placed_value_total",
			Help:      "Sum of total_amount over placed orders.",
		}),
		reconciliation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "reconciliations_total",
			Help:      "Payment callbacks applied to orders, by outcome.",
		}, []string{"outcome"}),
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Cart writes, by operation.",
		}, []string{"op"}),
		dbPoolOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "open_connections",
			Help:      "Open connections in the PostgreSQL pool.",
		}),
		dbPoolInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "in_use_connections",
			Help:      "Connections currently in use.",
		}),
		dbPoolWaits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "wait_count",
			Help:      "Total connections waited for.",
		}),
		dbQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "queries_total",
			Help:      "SQL statements executed, by outcome (ok, slow, error, cancelled).",
		}, []string{"outcome"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Order events handed to Pub/Sub, by type and outcome.",
		}, []string{"type", "outcome"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.ordersPlaced,
		m.orderValue,
		m.reconciliation,
		m.cartMutations,
		m.dbPoolOpen,
		m.dbPoolInUse,
		m.dbPoolWaits,
		m.dbQueries,
		m.events,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request in flight and returns the func that records it.
func (m *Metrics) RequestStarted(method, route string) func(status int) {
	start := time.Now()
	m.httpInFlight.Inc()

	return func(status int) {
		m.httpInFlight.Dec()
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// OrderPlaced counts a placed order and its value.
func (m *Metrics) OrderPlaced(total decimal.Decimal) {
	m.ordersPlaced.Inc()
	m.orderValue.Add(total.InexactFloat64())
}

// PaymentReconciled counts a payment callback by outcome.
func (m *Metrics) PaymentReconciled(outcome string) {
	m.reconciliation.WithLabelValues(outcome).Inc()
}

// CartMutated counts a cart write by operation.
func (m *Metrics) CartMutated(op string) {
	m.cartMutations.WithLabelValues(op).Inc()
}

// ObserveDBPool copies pool statistics into gauges.
func (m *Metrics) ObserveDBPool(stats sql.DBStats) {
	m.dbPoolOpen.Set(float64(stats.OpenConnections))
	m.dbPoolInUse.Set(float64(stats.InUse))
	m.dbPoolWaits.Set(float64(stats.WaitCount))
}

// QueryObserved counts one SQL statement by outcome.
func (m *Metrics) QueryObserved(outcome string) {
	m.dbQueries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) EventPublished(eventType, outcome string) {
	m.events.WithLabelValues(eventType, outcome).Inc()
}
