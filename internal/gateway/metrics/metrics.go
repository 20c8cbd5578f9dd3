package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Forwarding metrics
	ForwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ariel_gateway_forwarded_total",
			Help: "Total number of requests forwarded upstream",
		},
		[]string{"route", "status"},
	)

	ValidationRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ariel_gateway_validation_rejects_total",
			Help: "Total number of requests rejected before forwarding",
		},
	)

	UpstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ariel_gateway_upstream_errors_total",
			Help: "Total number of failed upstream calls",
		},
		[]string{"route"},
	)

	UpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ariel_gateway_upstream_duration_seconds",
			Help:    "Duration of upstream calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
