package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fleet"

var (
	registry = prometheus.NewRegistry()

	repairOrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repair_orders_created_total",
			Help:      "Repair orders created.",
		},
	)

	repairTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repair_order_transitions_total",
			Help:      "Accepted repair order status transitions.",
		},
		[]string{"from", "to"},
	)

	dispositionsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "used_part_dispositions_total",
			Help:      "Used-part dispositions recorded.",
		},
		[]string{"type"},
	)

	dispositionsReversed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "used_part_reversals_total",
			Help:      "Used-part dispositions reversed.",
		},
		[]string{"type", "stock_rolled_back"},
	)

	stockReturns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_returned_lines_total",
			Help:      "Stock lines returned after repairs.",
		},
	)

	writeConflicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_write_conflicts_total",
			Help:      "Version conflicts on collection writes.",
		},
		[]string{"collection"},
	)

	changesSuppressed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "changefeed_suppressed_total",
			Help:      "Remote change notifications dropped as echoes or stale.",
		},
		[]string{"reason"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		repairOrdersCreated,
		repairTransitions,
		dispositionsProcessed,
		dispositionsReversed,
		stockReturns,
		writeConflicts,
		changesSuppressed,
		httpDuration,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

func RepairOrderCreated() { repairOrdersCreated.Inc() }

func RepairOrderTransitioned(from, to string) { repairTransitions.WithLabelValues(from, to).Inc() }

func DispositionProcessed(kind string) { dispositionsProcessed.WithLabelValues(kind).Inc() }

func DispositionReversed(kind string, rolledBack bool) {
	dispositionsReversed.WithLabelValues(kind, strconv.FormatBool(rolledBack)).Inc()
}

func StockReturned(lines int) { stockReturns.Add(float64(lines)) }

func ChangeSuppressed(reason string) { changesSuppressed.WithLabelValues(reason).Inc() }

func ObserveHTTP(method, route string, status int, seconds float64) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}

// ConflictCounter plugs write conflicts of collections into the registry.
type ConflictCounter struct{}

func (ConflictCounter) WriteConflict(key string) { writeConflicts.WithLabelValues(key).Inc() }
