package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cyberlearn_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cyberlearn_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cyberlearn_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cyberlearn_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cyberlearn_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// QuizCompletions counts completed quiz attempts by save outcome
	QuizCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cyberlearn_quiz_completions_total",
			Help: "Total number of completed quiz attempts",
		},
		[]string{"saved"}, // "true" when the result row was persisted
	)

	// PointsAwarded counts LBT points awarded through quiz completions
	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cyberlearn_quiz_points_awarded_total",
			Help: "Total LBT points awarded for quiz completions",
		},
	)

	// PurchaseCounter counts marketplace purchase attempts by outcome
	PurchaseCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cyberlearn_marketplace_purchases_total",
			Help: "Total number of marketplace purchase attempts",
		},
		[]string{"outcome"}, // "completed", "rejected" or "failed"
	)

	// PurchaseVolume counts LBT moved through completed purchases
	PurchaseVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cyberlearn_marketplace_purchase_volume_lbt",
			Help: "Total LBT transferred through completed purchases",
		},
	)

	// CacheHits counts the number of cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cyberlearn_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// CacheMisses counts the number of cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cyberlearn_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cyberlearn_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cyberlearn_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
