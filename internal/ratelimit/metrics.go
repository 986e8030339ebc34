package ratelimit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rateLimiterWaitSeconds = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "rate_limiter_wait_seconds",
		Help:    "Time callers spend waiting for a rate limit slot",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
	},
)

func recordWait(d time.Duration) {
	rateLimiterWaitSeconds.Observe(d.Seconds())
}
