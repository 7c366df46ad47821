// Package metrics provides Prometheus metrics collection for the payroll service.
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

	// PayrollCalculationsTotal counts payroll calculations by country and outcome.
	PayrollCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payroll_calculations_total",
			Help: "Total number of payroll calculations",
		},
		[]string{"country", "status"},
	)

	// PayrollCalculationDuration tracks single-employee calculation time.
	PayrollCalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payroll_calculation_duration_seconds",
			Help:    "Payroll calculation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"country"},
	)

	// PayrollRunEmployees tracks the number of employees per payroll run.
	PayrollRunEmployees = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payroll_run_employees",
			Help:    "Employees processed per payroll run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"country", "status"},
	)

	// CacheOperationsTotal tracks tax pack cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tax_pack_cache_operations_total",
			Help: "Total number of tax pack cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tax_pack_cache_size",
			Help: "Current tax pack cache size",
		},
	)

	// CircuitBreakerState exposes breaker state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// AuditEntriesTotal counts audit entries by outcome.
	AuditEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_entries_total",
			Help: "Total number of audit log entries by outcome",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPayrollCalculation records one calculation outcome.
func RecordPayrollCalculation(country string, duration time.Duration, status string) {
	PayrollCalculationDuration.WithLabelValues(country).Observe(duration.Seconds())
	PayrollCalculationsTotal.WithLabelValues(country, status).Inc()
}

// RecordPayrollRun records the size of a finished payroll run.
func RecordPayrollRun(country string, employees int, status string) {
	PayrollRunEmployees.WithLabelValues(country, status).Observe(float64(employees))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheSize sets the current cache size.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}

// SetCircuitBreakerState publishes the state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAuditEntries counts n audit entries with one outcome: written, dropped or failed.
func RecordAuditEntries(result string, n int) {
	AuditEntriesTotal.WithLabelValues(result).Add(float64(n))
}
