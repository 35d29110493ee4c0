package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Rejected prometheus.Counter
	Allowed  prometheus.Counter
}

// New registers the rate limit metrics on reg. A nil reg uses the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Rejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "roident_ratelimit_rejected_total",
			Help: "Total number of requests rejected by the per-client rate limiter",
		}),
		Allowed: factory.NewCounter(prometheus.CounterOpts{
			Name: "roident_ratelimit_allowed_total",
			Help: "Total number of requests admitted by the per-client rate limiter",
		}),
	}
}

func (m *Metrics) IncrementRejected() {
	if m != nil {
		m.Rejected.Inc()
	}
}

func (m *Metrics) IncrementAllowed() {
	if m != nil {
		m.Allowed.Inc()
	}
}
