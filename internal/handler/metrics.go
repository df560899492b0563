package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the service.
var Metrics = struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	DBPoolActive     prometheus.GaugeFunc
	DBPoolIdle       prometheus.GaugeFunc
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(pool *pgxpool.Pool) {
	Metrics.AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creatorlens_analyses_total",
			Help: "Total channel analyses, by outcome.",
		},
		[]string{"outcome"},
	)

	Metrics.AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "creatorlens_analysis_duration_seconds",
			Help:    "Duration of full channel analysis runs.",
			Buckets: prometheus.DefBuckets,
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "creatorlens_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by method and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "creatorlens_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// DB pool gauges — read live stats from pgxpool
	if pool != nil {
		Metrics.DBPoolActive = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "creatorlens_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		)

		Metrics.DBPoolIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "creatorlens_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		)

		prometheus.MustRegister(Metrics.DBPoolActive)
		prometheus.MustRegister(Metrics.DBPoolIdle)
	}

	prometheus.MustRegister(
		Metrics.AnalysesTotal,
		Metrics.AnalysisDuration,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)
}

// ObserveAnalysis records one analysis run for the counters. The outcome is
// "ok" or a lowercased error kind.
func ObserveAnalysis(outcome string, elapsed time.Duration) {
	if Metrics.AnalysesTotal == nil {
		return
	}
	Metrics.AnalysesTotal.WithLabelValues(strings.ToLower(outcome)).Inc()
	Metrics.AnalysisDuration.Observe(elapsed.Seconds())
}

// NewMetricsMiddleware returns a Fiber middleware that tracks in-flight
// requests and request durations.
func NewMetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if Metrics.RequestsInFlight == nil {
			return c.Next()
		}

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		Metrics.RequestsInFlight.Dec()
		Metrics.RequestDuration.
			WithLabelValues(c.Method(), strconv.Itoa(c.Response().StatusCode())).
			Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler exposes the Prometheus registry at GET /metrics.
func MetricsHandler() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		h(c.RequestCtx())
		return nil
	}
}
