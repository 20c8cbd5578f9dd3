package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request handling metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ariel_bridge_requests_total",
			Help: "Total number of requests handled by the bridge",
		},
		[]string{"domain", "handler"},
	)

	// Activity log metrics
	ActivitiesLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ariel_bridge_activities_logged_total",
			Help: "Total number of activity records appended",
		},
		[]string{"domain", "type"},
	)

	ActivitiesEvicted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ariel_bridge_activities_evicted_total",
			Help: "Total number of activity records evicted at capacity",
		},
		[]string{"domain"},
	)

	ActivityLogDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ariel_bridge_activity_log_depth",
			Help: "Current number of records in the activity log",
		},
		[]string{"domain"},
	)

	// Broadcast metrics
	BroadcastErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ariel_bridge_broadcast_errors_total",
			Help: "Total number of failed activity broadcast publishes",
		},
		[]string{"domain"},
	)
)
