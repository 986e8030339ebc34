package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var riotRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "riot_requests_total",
		Help: "Outbound Riot API requests by endpoint and status",
	},
	[]string{"endpoint", "status"},
)

func recordRequest(endpoint, status string) {
	riotRequestsTotal.WithLabelValues(endpoint, status).Inc()
}
