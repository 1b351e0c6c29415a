package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transitions counts slot state-machine attempts by action and outcome.
var Transitions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "turf_slot_transitions_total",
		Help: "Slot lifecycle transition attempts, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

func ObserveTransition(action string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	Transitions.WithLabelValues(action, outcome).Inc()
}
