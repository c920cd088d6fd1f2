package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finbook_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "endpoint", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "finbook_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "endpoint"})

	// EntriesPosted counts journal entries that reached POSTED status.
	EntriesPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finbook_journal_entries_posted_total",
		Help: "Total journal entries posted",
	})

	// EntriesVoided counts journal entries flipped to VOIDED, including
	// cascade voids.
	EntriesVoided = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finbook_journal_entries_voided_total",
		Help: "Total journal entries voided",
	})
)

// MetricsMiddleware records per-route request counts and latency. The route
// template (c.FullPath) is used as the endpoint label so path parameters do
// not explode the cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
