package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tair/storefront/internal/usecase/query"
)

// Metrics holds the storefront Prometheus collectors
type Metrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	entities       *prometheus.GaugeVec
	revenue        prometheus.Gauge
}

// NewMetrics registers the collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_requests_total",
				Help: "Total number of requests to the storefront service",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_request_duration_seconds",
				Help:    "Duration of storefront requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// client-side quantiles p50, p90, p95, p99
		requestSummary: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "storefront_request_duration_summary",
				Help: "Summary of request durations with percentiles",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
		entities: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "storefront_entities",
				Help: "Number of stored rows per entity",
			},
			[]string{"entity"},
		),
		revenue: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "storefront_revenue",
				Help: "Sum of totals of orders that were not canceled",
			},
		),
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// middleware records count and latency of requests to endpoint
func (m *Metrics) middleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		m.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		m.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		m.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// observeStats publishes dashboard statistics as gauges
func (m *Metrics) observeStats(stats *query.Stats) {
	m.entities.WithLabelValues("product").Set(float64(stats.Products))
	m.entities.WithLabelValues("category").Set(float64(stats.Categories))
	m.entities.WithLabelValues("user").Set(float64(stats.Users))
	m.entities.WithLabelValues("order").Set(float64(stats.Orders))
	m.revenue.Set(stats.Revenue.InexactFloat64())
}

// refresh recomputes the gauges after a mutation
func (m *Metrics) refresh(ctx context.Context, stats *query.GetStatsHandler) {
	s, err := stats.Handle(ctx, query.GetStatsQuery{})
	if err == nil {
		m.observeStats(s)
	}
}
