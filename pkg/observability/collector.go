package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/latch"
)

// Collector counts applied transitions and ignored events for one machine
// (or several machines sharing a vocabulary).
type Collector[S, E latch.Tagger] struct {
	transitions *prometheus.CounterVec
	ignored     *prometheus.CounterVec
}

// NewCollector creates the counters and registers them on reg. namespace
// prefixes the metric names and may be empty.
func NewCollector[S, E latch.Tagger](reg prometheus.Registerer, namespace string) *Collector[S, E] {
	c := &Collector[S, E]{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fsm_transitions_total",
				Help:      "Total number of applied transitions.",
			},
			[]string{"from", "event", "to"},
		),
		ignored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fsm_events_ignored_total",
				Help:      "Total number of events with no matching transition.",
			},
			[]string{"state", "event"},
		),
	}
	reg.MustRegister(c.transitions, c.ignored)
	return c
}

// Hooks returns the hook set to install via latch.WithHooks.
func (c *Collector[S, E]) Hooks() latch.Hooks[S, E] {
	return latch.Hooks[S, E]{
		OnTransition: func(from S, event E, to S) {
			c.transitions.WithLabelValues(label(from), label(event), label(to)).Inc()
		},
		OnIgnored: func(state S, event E) {
			c.ignored.WithLabelValues(label(state), label(event)).Inc()
		},
	}
}

// label renders a tagged value for use as a metric label. Types that
// implement fmt.Stringer get their declared name; everything else falls back
// to the fmt default.
func label(v any) string {
	return fmt.Sprint(v)
}
