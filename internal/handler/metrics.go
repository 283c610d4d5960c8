package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "marketplace"

// order commands consumed from Kafka
var (
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "order_commands",
			Name:      "handled_total",
			Help:      "Order commands by outcome: placed, replayed, rejected or dead_lettered.",
		},
		[]string{"outcome"},
	)

	offsetCommitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "order_commands",
			Name:      "offset_commit_errors_total",
			Help:      "Kafka offset commits that failed after a command was handled.",
		},
	)

	commandDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "order_commands",
			Name:      "duration_seconds",
			Help:      "Time from fetching an order command to placing the order.",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	commandsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "order_commands",
			Name:      "in_flight",
			Help:      "Order commands currently being placed.",
		},
	)
)

// POST /orders
var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "requests_total",
			Help:      "Checkout requests by response class.",
		},
		[]string{"status"},
	)

	checkoutDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "duration_seconds",
			Help:      "Checkout request latency by response class.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		commandsTotal,
		offsetCommitErrors,
		commandDuration,
		commandsInFlight,

		checkoutsTotal,
		checkoutDuration,
	)
}
