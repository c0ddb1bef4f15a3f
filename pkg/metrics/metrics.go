package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReservationsTotal counts reserve outcomes by result label
	// (committed, insufficient_seats, screening_closed, conflict,
	// timeout, error).
	ReservationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinema_chain",
		Subsystem: "inventory",
		Name:      "reservations_total",
		Help:      "Reserve operation outcomes.",
	}, []string{"result"})

	CancellationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinema_chain",
		Subsystem: "inventory",
		Name:      "cancellations_total",
		Help:      "Cancel operation outcomes.",
	}, []string{"result"})

	ReserveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "cinema_chain",
		Subsystem: "inventory",
		Name:      "reserve_duration_seconds",
		Help:      "Latency of reserve operations including retries.",
		Buckets:   prometheus.DefBuckets,
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cinema_chain",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cinema_chain",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)
