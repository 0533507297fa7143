package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewManagerRegistersOnCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager(WithPrometheusRegistry(reg), WithNamespace("test"), WithSubsystem("sub"))
	if m == nil {
		t.Fatal("manager is nil")
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	// Counters without observations are still registered but only appear
	// after first use; exercise a few and re-gather.
	m.workoutsLogged.Inc()
	m.decisions.WithLabelValues("verified").Inc()
	m.reviewQueueSize.Set(3)

	families, err = reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected registered metric families")
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	// The helpers operate on the global manager; they must not panic.
	RecordWorkoutLogged()
	RecordWorkoutRejected()
	RecordDecision("verified")
	RecordDecision("flagged")
	RecordDecisionRepeat()
	RecordWatchlistToggle()
	RecordExport()
	UpdateReviewQueueSize(5)
	UpdateRosterSize(12)
	RecordStoreWrite()
	RecordStoreFaultRecovered()
	RecordHTTPRequest("athletes", "GET", "200")
	RecordHTTPRequestDuration("athletes", "GET", "200", 1.5)
	RecordHTTPError("athletes", "GET", "not_found")

	if GetRegistry() == nil {
		t.Fatal("global registry is nil")
	}
}
