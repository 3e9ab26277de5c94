package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

type Metrics struct {
	Resolutions *prometheus.CounterVec
}

func NewMetrics(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "resolutions_total",
			Help:      "Build configuration resolutions, by target and outcome",
		}, []string{"target", "outcome"}),
	}
	reg.MustRegister(m.Resolutions)
	return m
}

// Safe on a nil receiver, metrics are optional
func (m *Metrics) observe(target string, outcome string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(target, outcome).Inc()
}
