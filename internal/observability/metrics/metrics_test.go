package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIntakeMetrics(reg)

	m.ObserveSubmission("lead", "accepted")
	m.ObserveSubmission("lead", "accepted")
	m.ObserveSubmission("lead", "rejected")
	m.ObserveSubmission("deal_request", "accepted")

	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("lead", "accepted")); got != 2 {
		t.Errorf("expected 2 accepted leads, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("lead", "rejected")); got != 1 {
		t.Errorf("expected 1 rejected lead, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("deal_request", "accepted")); got != 1 {
		t.Errorf("expected 1 accepted deal request, got %v", got)
	}
}

func TestObserveFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIntakeMetrics(reg)

	m.ObservePersistFailure("lead")
	m.ObserveRelayFailure("lead")
	m.ObserveRelayFailure("lead")

	if got := testutil.ToFloat64(m.persistFailures.WithLabelValues("lead")); got != 1 {
		t.Errorf("expected 1 persist failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.relayFailures.WithLabelValues("lead")); got != 2 {
		t.Errorf("expected 2 relay failures, got %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *IntakeMetrics
	m.ObserveSubmission("lead", "accepted")
	m.ObservePersistFailure("lead")
	m.ObserveRelayFailure("lead")
	m.ObserveRelayLatency(0.25)
}
