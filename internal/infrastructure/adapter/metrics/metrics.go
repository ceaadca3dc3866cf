// Package metrics exposes HTTP and database metrics through a private
// Prometheus registry.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "code_clicker"

// Metrics holds every collector the API records
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	dbQueries    *prometheus.HistogramVec
	dbErrors     *prometheus.CounterVec
	poolOpen     prometheus.Gauge
	poolInUse    prometheus.Gauge
	poolIdle     prometheus.Gauge
	poolWait     prometheus.Gauge
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		dbQueries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "SQL statement latency by statement type and table.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"type", "table"}),
		dbErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "Failed SQL statements by statement type and table.",
		}, []string{"type", "table"}),
		poolOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "open_connections",
			Help:      "Open connections, in use plus idle.",
		}),
		poolInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "in_use_connections",
			Help:      "Connections currently in use.",
		}),
		poolIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "idle_connections",
			Help:      "Idle connections.",
		}),
		poolWait: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "wait_count",
			Help:      "Total connections waited for.",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.dbQueries,
		m.dbErrors,
		m.poolOpen,
		m.poolInUse,
		m.poolIdle,
		m.poolWait,
	)

	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request. route is the matched
// pattern so path parameters don't explode cardinality.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveQuery records one SQL statement
func (m *Metrics) ObserveQuery(queryType, table string, elapsed time.Duration, err error) {
	m.dbQueries.WithLabelValues(queryType, table).Observe(elapsed.Seconds())
	if err != nil {
		m.dbErrors.WithLabelValues(queryType, table).Inc()
	}
}

// ObservePool records a connection pool sample
func (m *Metrics) ObservePool(stats sql.DBStats) {
	m.poolOpen.Set(float64(stats.OpenConnections))
	m.poolInUse.Set(float64(stats.InUse))
	m.poolIdle.Set(float64(stats.Idle))
	m.poolWait.Set(float64(stats.WaitCount))
}
