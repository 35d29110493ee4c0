package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for identifier validation.
type Metrics struct {
	// Outcomes by identifier kind, verdict and rejection reason
	Outcomes *prometheus.CounterVec

	// Per-item check latency by identifier kind
	CheckLatency *prometheus.HistogramVec

	// Items per batch request
	BatchSize prometheus.Histogram
}

// New registers the validation metrics on reg. A nil reg uses the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roident_validation_outcomes_total",
			Help: "Total validation outcomes by identifier kind, verdict and reason",
		}, []string{"kind", "valid", "reason"}),

		CheckLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roident_validation_check_duration_seconds",
			Help:    "Duration of a single identifier check",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"kind"}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "roident_validation_batch_items",
			Help:    "Number of items submitted per batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}
}

// IncrementOutcome records one validation verdict.
func (m *Metrics) IncrementOutcome(kind string, valid bool, reason string) {
	if m != nil {
		m.Outcomes.WithLabelValues(kind, strconv.FormatBool(valid), reason).Inc()
	}
}

// ObserveCheckLatency records how long one check took.
func (m *Metrics) ObserveCheckLatency(kind string, d time.Duration) {
	if m != nil {
		m.CheckLatency.WithLabelValues(kind).Observe(d.Seconds())
	}
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
