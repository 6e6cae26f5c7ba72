// Package metrics defines the Prometheus collectors exposed by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	DBOpenConnections  *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
	}
}
