// Package metrics defines the Prometheus collectors of the skill.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the skill collectors. A nil *Metrics records nothing.
type Metrics struct {
	turns           *prometheus.CounterVec
	upstreamErrors  *prometheus.CounterVec
	handlerFailures prometheus.Counter
}

const (
	UpstreamSearch = "search"
	UpstreamPage   = "page"
)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lyricecho",
			Name:      "turns_total",
			Help:      "Conversation turns handled, by intent.",
		}, []string{"intent"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lyricecho",
			Name:      "upstream_errors_total",
			Help:      "Failed calls to the search API or song pages.",
		}, []string{"upstream"}),
		handlerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lyricecho",
			Name:      "handler_failures_total",
			Help:      "Turns answered by the catch-all apology.",
		}),
	}
	reg.MustRegister(m.turns, m.upstreamErrors, m.handlerFailures)
	return m
}

func (m *Metrics) Turn(intent string) {
	if m == nil {
		return
	}
	m.turns.WithLabelValues(intent).Inc()
}

func (m *Metrics) UpstreamError(upstream string) {
	if m == nil {
		return
	}
	m.upstreamErrors.WithLabelValues(upstream).Inc()
}

func (m *Metrics) HandlerFailure() {
	if m == nil {
		return
	}
	m.handlerFailures.Inc()
}
