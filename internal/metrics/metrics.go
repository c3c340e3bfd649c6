// Package metrics provides Prometheus metrics collection for the catering
// service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SuggestionsTotal tracks quantity suggestion computations.
	SuggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantity_suggestions_total",
			Help: "Total number of quantity suggestions computed",
		},
		[]string{"status"},
	)

	// CartOperationsTotal tracks cart mutations by operation.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	// CheckoutsTotal tracks checkout attempts by outcome.
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Total number of checkout attempts",
		},
		[]string{"status"},
	)

	// DistanceResolutionsTotal tracks distance resolver calls by outcome.
	DistanceResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "distance_resolutions_total",
			Help: "Total number of distance resolution attempts",
		},
		[]string{"status"},
	)

	// DistanceResolutionDuration tracks distance resolver latency.
	DistanceResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "distance_resolution_duration_seconds",
			Help:    "Distance resolution duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordSuggestion records a quantity suggestion computation.
func RecordSuggestion(status string) {
	SuggestionsTotal.WithLabelValues(status).Inc()
}

// RecordCartOperation records a cart mutation.
func RecordCartOperation(operation string) {
	CartOperationsTotal.WithLabelValues(operation).Inc()
}

// RecordCheckout records a checkout attempt.
func RecordCheckout(status string) {
	CheckoutsTotal.WithLabelValues(status).Inc()
}

// RecordDistanceResolution records a distance resolver call.
func RecordDistanceResolution(duration time.Duration, status string) {
	DistanceResolutionDuration.Observe(duration.Seconds())
	DistanceResolutionsTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
