package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	TestsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "compass_tests_started_total",
			Help: "Question sets handed out",
		},
	)

	AnswersRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compass_answers_total",
			Help: "Answers submitted, by outcome",
		},
		[]string{"outcome"},
	)

	TestsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compass_tests_completed_total",
			Help: "Completed tests by resulting archetype",
		},
		[]string{"archetype"},
	)

	ProgressRestores = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compass_progress_restores_total",
			Help: "Saved progress lookups, by outcome",
		},
		[]string{"outcome"},
	)

	PersistenceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compass_persistence_failures_total",
			Help: "Swallowed progress and result persistence errors",
		},
		[]string{"operation"},
	)

	MintAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compass_nft_mint_attempts_total",
			Help: "NFT mint attempts by status",
		},
		[]string{"status"},
	)
)

var registerOnce sync.Once

// Init 注册所有指标，可重复调用
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			TestsStarted,
			AnswersRecorded,
			TestsCompleted,
			ProgressRestores,
			PersistenceFailures,
			MintAttempts,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
