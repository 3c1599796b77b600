// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset cache
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_hits_total",
			Help: "Dataset lookups served from the cache",
		},
		[]string{"cache", "dataset"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_misses_total",
			Help: "Dataset lookups that required a fetch",
		},
		[]string{"cache", "dataset"},
	)

	CacheFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_fetch_errors_total",
			Help: "Dataset fetches that failed",
		},
		[]string{"cache", "dataset"},
	)

	CacheFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_cache_fetch_duration_seconds",
			Help:    "Duration of dataset fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"cache", "dataset"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_cache_entries",
			Help: "Datasets currently held by the cache",
		},
		[]string{"cache"},
	)

	// Data source circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_circuit_breaker_requests_total",
			Help: "Requests passed through the circuit breaker by result",
		},
		[]string{"name", "result"},
	)

	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
)

// Middleware records latency and count for every request. The route label
// is the matched route pattern, so path parameters do not explode cardinality.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		code := strconv.Itoa(status)
		HTTPRequestDuration.WithLabelValues(c.Method(), route, code).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(c.Method(), route, code).Inc()
		return err
	}
}
