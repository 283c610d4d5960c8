package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "marketplace",
	Subsystem: "notify",
	Name:      "dispatches_total",
	Help:      "Notification dispatches by channel and result.",
}, []string{"channel", "result"})
