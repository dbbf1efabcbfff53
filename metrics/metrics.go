package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkpointRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ltcd",
		Subsystem: "consensus",
		Name:      "checkpoint_rejections_total",
		Help:      "Count of blocks rejected for not matching a checkpoint.",
	}, []string{"network"})
	requiredTargetTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ltcd",
		Subsystem: "consensus",
		Name:      "required_target_total",
		Help:      "Count of required target computations by difficulty algorithm.",
	}, []string{"network", "algo"})
	verificationProgress = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ltcd",
		Subsystem: "consensus",
		Name:      "verification_progress",
		Help:      "Last estimated fraction of the chain verified.",
	}, []string{"network"})
)

func labelOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

func ObserveCheckpointRejection(network string) {
	checkpointRejectionsTotal.WithLabelValues(labelOrUnknown(network)).Inc()
}

func ObserveRequiredTarget(network, algo string) {
	requiredTargetTotal.WithLabelValues(labelOrUnknown(network), labelOrUnknown(algo)).Inc()
}

func SetVerificationProgress(network string, progress float64) {
	verificationProgress.WithLabelValues(labelOrUnknown(network)).Set(progress)
}
