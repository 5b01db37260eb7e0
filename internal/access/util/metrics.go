package util

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PermissionDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_permission_decisions_total",
			Help: "Permission resolver decisions by outcome and matched rule.",
		},
		[]string{"decision", "rule"},
	)

	WalletVerifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_wallet_verifications_total",
			Help: "Wallet proof verifications by outcome and matching channel.",
		},
		[]string{"outcome", "channel"},
	)
)

// InitMetrics registers the service metrics with the default registry.
func InitMetrics() {
	prometheus.MustRegister(PermissionDecisions, WalletVerifications)
}

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
