// Package metrics declares the prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "freight"

var (
	// CacheRequestsTotal counts quote cache lookups by result: hit, miss or error.
	CacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "quote_cache",
		Name:      "requests_total",
		Help:      "Quote cache lookups by result.",
	}, []string{"result"})

	// CacheItems is the number of entries held by the in-memory backend.
	CacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "quote_cache",
		Name:      "items",
		Help:      "Entries held by the in-memory quote cache.",
	})

	// CacheEvictedTotal counts expired entries removed by the eviction job.
	CacheEvictedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "quote_cache",
		Name:      "evicted_total",
		Help:      "Expired quote cache entries removed.",
	})

	// CarrierQuoteDuration observes GetQuotes latency per carrier kind.
	CarrierQuoteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "carrier",
		Name:      "quote_duration_seconds",
		Help:      "Time spent obtaining quotes from one carrier.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	// CarrierFailuresTotal counts carriers whose quoting failed and was skipped.
	CarrierFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "carrier",
		Name:      "failures_total",
		Help:      "Carriers skipped because quoting failed.",
	}, []string{"kind"})

	// CarrierFallbacksTotal counts integration failures answered by the mock strategy.
	CarrierFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "carrier",
		Name:      "fallbacks_total",
		Help:      "Integration failures answered with illustrative pricing.",
	}, []string{"kind"})

	// QuotesComputedTotal counts persisted quotes.
	QuotesComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "quotes",
		Name:      "computed_total",
		Help:      "Quotes persisted for shipments.",
	})

	// RequestDuration observes HTTP request latency by status code.
	RequestDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  namespace,
		Subsystem:  "http",
		Name:       "request_duration_seconds",
		Help:       "HTTP request latency.",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"status"})
)

// ObserveRequest records one served HTTP request.
func ObserveRequest(d time.Duration, status int) {
	RequestDuration.WithLabelValues(strconv.Itoa(status)).Observe(d.Seconds())
}
