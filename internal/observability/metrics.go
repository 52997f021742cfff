package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "brtc_gateway", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "brtc_gateway",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "brtc_gateway", Name: "upstream_requests_total", Help: "Calls issued to the BRTC API"},
		[]string{"operation", "outcome"},
	)
	UpstreamRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "brtc_gateway",
			Name:      "upstream_request_duration_seconds",
			Help:      "BRTC API round-trip latency",
			Buckets:   prometheus.DefBuckets,
		},
	)
	CountdownRefreshesTotal = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: "brtc_gateway", Name: "countdown_refreshes_total", Help: "Departure countdown recomputations"},
	)
)
