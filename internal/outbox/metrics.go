package outbox

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "marketplace",
	Subsystem: "outbox",
	Name:      "deliveries_total",
	Help:      "Queued deliveries handed to the broker by channel and result.",
}, []string{"channel", "result"})
