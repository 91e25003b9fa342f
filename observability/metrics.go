package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "carpool", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "carpool",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	CarpoolsPublished = promauto.NewCounter(prometheus.CounterOpts{Namespace: "carpool", Name: "rides_published_total", Help: "Carpools created"})
	SeatsBooked       = promauto.NewCounter(prometheus.CounterOpts{Namespace: "carpool", Name: "seats_booked_total", Help: "Successful ride joins"})
	PaymentsRefunded  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "carpool", Name: "payments_refunded_total", Help: "Payments transitioned to refunded"})
)
