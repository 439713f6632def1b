// Package metrics holds the domain collectors. They register with the default
// prometheus registry, which fiberprometheus serves at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "enxovaldb"

var (
	// DonationsApplied counts donation records appended to items.
	DonationsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_applied_total",
		Help:      "Donation records appended to items.",
	})

	// DonationsSkipped counts batch updates whose itemId matched no item.
	DonationsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_skipped_total",
		Help:      "Donation updates skipped because the item was not found.",
	})

	// StoreOperations counts document store operations.
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Document store operations by document, operation and result.",
	}, []string{"document", "op", "result"})

	storeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Document store operation latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"document", "op"})
)

// ObserveStore records one store operation that started at start.
func ObserveStore(document, op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreOperations.WithLabelValues(document, op, result).Inc()
	storeDuration.WithLabelValues(document, op).Observe(time.Since(start).Seconds())
}
