package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts served requests by method, route pattern and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_requests_total",
		Help: "Total HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"route"})

	// SummaryComputations counts catalog summaries computed, by surface.
	SummaryComputations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_summary_computations_total",
		Help: "Total catalog summaries computed by presentation surface",
	}, []string{"surface"})

	// CatalogSize tracks the size of the last snapshot summarized.
	CatalogSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "catalog_snapshot_size",
		Help: "Number of products and categories in the last summarized snapshot",
	}, []string{"kind"})

	// RateLimitRejections counts requests refused by the rate limiter, by reason.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_rate_limit_rejections_total",
		Help: "Requests rejected by rate limiting, by reason (throttled|banned)",
	}, []string{"reason"})
)
