// Package metrics provides Prometheus instrumentation for the dashboard.
//
// Wire it up once in internal/server:
//
//	r.Use(metrics.Middleware())
//	r.Get("/metrics", "metrics", metrics.Handler())
//
// Then scrape http://localhost:8080/metrics from Prometheus.
package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ─────────────────────────────────────────────
// Built-in metrics
// ─────────────────────────────────────────────

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "salesdash",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salesdash",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "salesdash",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// ReportQueryDuration tracks aggregation query latency per report.
	ReportQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "salesdash",
			Subsystem: "report",
			Name:      "query_duration_seconds",
			Help:      "Duration of report aggregation queries in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .5, 1},
		},
		[]string{"report"},
	)

	// CacheHits / CacheMisses track report cache effectiveness.
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salesdash",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total report cache hits.",
		},
		[]string{"driver"}, // "redis" | "memory"
	)
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salesdash",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total report cache misses.",
		},
		[]string{"driver"},
	)

	// LiveClients tracks connected WebSocket dashboard clients.
	LiveClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "salesdash",
		Subsystem: "live",
		Name:      "clients",
		Help:      "Number of connected live-dashboard WebSocket clients.",
	})

	// ExportsTotal counts CSV report exports by destination disk.
	ExportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salesdash",
			Subsystem: "export",
			Name:      "exports_total",
			Help:      "Total CSV report exports.",
		},
		[]string{"disk"}, // "local" | "s3"
	)
)

// ─────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────

// DefaultRegistry is the Prometheus registry used by the dashboard.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		ReportQueryDuration,
		CacheHits,
		CacheMisses,
		LiveClients,
		ExportsTotal,
	)
}

// MustRegister adds your own prometheus.Collector to the registry.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// ─────────────────────────────────────────────
// HTTP middleware
// ─────────────────────────────────────────────

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack lets WebSocket upgrades pass through the wrapper.
func (r *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("metrics: underlying ResponseWriter does not support hijacking")
	}
	return hj.Hijack()
}

// Middleware records Prometheus metrics for every request: duration
// histogram, total counter, in-flight gauge.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path // route set is small and fixed, cardinality is fine

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes the Prometheus metrics page. Mount on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}

// ObserveReportQuery records a report query duration with a simple timer:
//
//	defer metrics.ObserveReportQuery("top_products", time.Now())
func ObserveReportQuery(report string, start time.Time) {
	ReportQueryDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}
