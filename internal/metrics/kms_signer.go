package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	kmsSignerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flowkms",
		Subsystem: "kms_signer",
		Name:      "operations_total",
		Help:      "Count of remote signing service operations.",
	}, []string{"operation", "status"})
	kmsSignerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flowkms",
		Subsystem: "kms_signer",
		Name:      "operation_duration_seconds",
		Help:      "Duration of remote signing service operations.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "status"})
)

// KMSSigner tracks metrics for remote signing calls.
type KMSSigner struct{}

// NewKMSSigner creates a KMSSigner metrics collector.
func NewKMSSigner() *KMSSigner {
	return &KMSSigner{}
}

// Observe records duration and status of a signing service operation.
func (m KMSSigner) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	kmsSignerOperationsTotal.WithLabelValues(operation, status).Inc()
	kmsSignerOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
