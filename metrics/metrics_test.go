package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestObserveCheckpointRejection(t *testing.T) {
	if inc := delta(t, checkpointRejectionsTotal.WithLabelValues("main"), func() {
		ObserveCheckpointRejection("main")
	}); inc != 1 {
		t.Fatalf("expected checkpoint rejection increment, got %v", inc)
	}

	if inc := delta(t, checkpointRejectionsTotal.WithLabelValues("unknown"), func() {
		ObserveCheckpointRejection("")
	}); inc != 1 {
		t.Fatalf("expected unknown network rejection increment, got %v", inc)
	}
}

func TestObserveRequiredTarget(t *testing.T) {
	if inc := delta(t, requiredTargetTotal.WithLabelValues("test", "kgw"), func() {
		ObserveRequiredTarget("test", "kgw")
	}); inc != 1 {
		t.Fatalf("expected required target increment, got %v", inc)
	}
}

func TestSetVerificationProgress(t *testing.T) {
	SetVerificationProgress("main", 0.25)
	if v := testutil.ToFloat64(verificationProgress.WithLabelValues("main")); v != 0.25 {
		t.Fatalf("expected progress gauge 0.25, got %v", v)
	}
}
