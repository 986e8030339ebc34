package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	cacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses (including expired entries)",
		},
		[]string{"cache"},
	)
)

func recordHit(name string)  { cacheHitsTotal.WithLabelValues(name).Inc() }
func recordMiss(name string) { cacheMissesTotal.WithLabelValues(name).Inc() }
