package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters/histograms for the lead intake pipeline.
type IntakeMetrics struct {
	submissionsTotal *prometheus.CounterVec
	persistFailures  *prometheus.CounterVec
	relayFailures    *prometheus.CounterVec
	relayLatency     prometheus.Histogram
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wholesaling",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Total form submissions by outcome",
		}, []string{"form", "status"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wholesaling",
			Subsystem: "intake",
			Name:      "persist_failures_total",
			Help:      "Submissions the datastore failed to record",
		}, []string{"form"}),
		relayFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wholesaling",
			Subsystem: "intake",
			Name:      "relay_failures_total",
			Help:      "Submissions the webhook relay failed to deliver",
		}, []string{"form"}),
		relayLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wholesaling",
			Subsystem: "intake",
			Name:      "relay_latency_seconds",
			Help:      "Latency of webhook relay deliveries",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.persistFailures, m.relayFailures, m.relayLatency)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(form, status string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(form, status).Inc()
}

func (m *IntakeMetrics) ObservePersistFailure(form string) {
	if m == nil {
		return
	}
	m.persistFailures.WithLabelValues(form).Inc()
}

func (m *IntakeMetrics) ObserveRelayFailure(form string) {
	if m == nil {
		return
	}
	m.relayFailures.WithLabelValues(form).Inc()
}

func (m *IntakeMetrics) ObserveRelayLatency(seconds float64) {
	if m == nil {
		return
	}
	m.relayLatency.Observe(seconds)
}
