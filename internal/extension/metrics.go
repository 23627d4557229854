package extension

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts hook invocations per plugin, event and result.
type Metrics struct {
	invocations *prometheus.CounterVec
}

// NewMetrics registers the hook counter with reg. A nil reg leaves the
// counter unregistered, which tests use to get isolated counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extension_hook_invocations_total",
				Help: "Number of plugin lifecycle hook invocations, differentiated by plugin, event and result.",
			},
			[]string{"plugin", "event", "result"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.invocations)
	}

	return m
}

func (m *Metrics) observe(plugin string, event Event, err error) {
	if m == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "failure"
	}

	m.invocations.WithLabelValues(plugin, event.String(), result).Inc()
}
