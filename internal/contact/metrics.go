package contact

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the submissions counter.
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport"
)

// Metrics records contact form activity in Prometheus.
type Metrics struct {
	submissions    *prometheus.CounterVec
	inFlight       prometheus.Gauge
	relayDuration  prometheus.Histogram
	honeypotFilled prometheus.Counter
	forms          prometheus.Gauge
}

// NewMetrics registers the contact metrics with reg under namespace.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"outcome"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "in_flight",
			Help:      "Submissions currently waiting on the relay",
		}),

		relayDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "relay_duration_seconds",
			Help:      "Time from sending to a settled status",
			Buckets:   prometheus.DefBuckets,
		}),

		honeypotFilled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "honeypot_filled_total",
			Help:      "Submissions that arrived with the hidden honeypot field filled",
		}),

		forms: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "forms",
			Help:      "Form instances held in memory",
		}),
	}
}

// Observe records one form transition. It is safe to share across forms.
func (m *Metrics) Observe(t Transition) {
	switch t.To {
	case StatusSending:
		m.inFlight.Inc()
	case StatusSuccess, StatusError:
		m.inFlight.Dec()
		m.relayDuration.Observe(t.Elapsed.Seconds())
		m.submissions.WithLabelValues(outcomeOf(t.Err)).Inc()
	}
}

// HoneypotFilled counts a submission with the hidden field set.
func (m *Metrics) HoneypotFilled() { m.honeypotFilled.Inc() }

// SetForms reports the number of tracked forms.
func (m *Metrics) SetForms(n int) { m.forms.Set(float64(n)) }

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrRejected):
		return OutcomeRejected
	default:
		return OutcomeTransport
	}
}
