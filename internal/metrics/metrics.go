package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmbox_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filmbox_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmbox_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Domain
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmbox_logins_total",
			Help: "Login attempts by result",
		},
		[]string{"result"}, // "success", "invalid_credentials", "error"
	)

	LedgerMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmbox_ledger_mutations_total",
			Help: "Watched/wishlist/favorite/review mutations by outcome",
		},
		[]string{"list", "outcome"},
	)
)

// RecordRequest records one finished HTTP request
func RecordRequest(method, route, statusCode string, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	RequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge
func TrackActiveRequest(inc bool) {
	if inc {
		ActiveRequests.Inc()
	} else {
		ActiveRequests.Dec()
	}
}

// RecordLogin counts a login attempt
func RecordLogin(result string) {
	LoginsTotal.WithLabelValues(result).Inc()
}

// RecordLedgerMutation counts a list or review change
func RecordLedgerMutation(list, outcome string) {
	LedgerMutations.WithLabelValues(list, outcome).Inc()
}
