package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "placement",
		Name:      "orders_total",
		Help:      "Order placement attempts by result.",
	}, []string{"result"})

	placeOrderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "marketplace",
		Subsystem: "placement",
		Name:      "duration_seconds",
		Help:      "Time spent placing an order, including fan-out.",
		Buckets:   prometheus.DefBuckets,
	})

	stockConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "placement",
		Name:      "stock_conflicts_total",
		Help:      "Orders that passed the pre-flight check but lost the stock at commit.",
	})

	ledgerFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "ledger",
		Name:      "failures_total",
		Help:      "Ledger entries that could not be recorded.",
	})
)
