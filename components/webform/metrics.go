package webform

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates the component's counters. All methods are nil-safe so
// instrumentation stays optional.
type Metrics struct {
	pageRenders        *prometheus.CounterVec
	downloads          prometheus.Counter
	validationFailures prometheus.Counter
}

// NewMetrics registers the component counters on the provided registerer
// (pass prometheus.DefaultRegisterer for the default registry).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		pageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contactform",
			Subsystem: "webform",
			Name:      "page_renders_total",
			Help:      "Form page renders partitioned by outcome (ok, degraded).",
		}, []string{"outcome"}),
		downloads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "contactform",
			Subsystem: "webform",
			Name:      "downloads_total",
			Help:      "Response documents produced by the download path.",
		}),
		validationFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "contactform",
			Subsystem: "webform",
			Name:      "validation_failures_total",
			Help:      "Submissions rejected because required answers were blank.",
		}),
	}
}

func (m *Metrics) renderedPage(outcome string) {
	if m == nil || m.pageRenders == nil {
		return
	}
	m.pageRenders.WithLabelValues(outcome).Inc()
}

func (m *Metrics) servedDownload() {
	if m == nil || m.downloads == nil {
		return
	}
	m.downloads.Inc()
}

func (m *Metrics) rejectedSubmission() {
	if m == nil || m.validationFailures == nil {
		return
	}
	m.validationFailures.Inc()
}
