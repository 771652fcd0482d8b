// Package metrics exposes the gateway's Prometheus collectors: HTTP request
// counters/latency and payment lifecycle transition counts, scraped at
// /metrics.
package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spg_http_requests_total",
			Help: "Total HTTP requests processed, by route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spg_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// PaymentTransitionsTotal counts every state-machine transition the
	// lifecycle service commits, labeled by the status it landed on.
	PaymentTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spg_payment_transitions_total",
			Help: "Total payment state transitions, by resulting status.",
		},
		[]string{"status"},
	)

	// WebhookDeliveriesTotal counts webhook dispatch attempts, labeled by
	// outcome ("delivered", "failed", "pending").
	WebhookDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spg_webhook_deliveries_total",
			Help: "Total webhook delivery attempts, by outcome.",
		},
		[]string{"outcome"},
	)
)

// GinMiddleware records request count and latency for every route Gin
// matched, keeping cardinality bounded by using the matched route template
// rather than the raw path.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, statusBucket(status)).Inc()
	}
}

func statusBucket(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
