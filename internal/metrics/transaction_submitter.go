package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submitterOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flowkms",
		Subsystem: "transaction_submitter",
		Name:      "transactions_total",
		Help:      "Count of submitted transactions by terminal outcome.",
	}, []string{"network", "outcome"})
	submitterPollIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flowkms",
		Subsystem: "transaction_submitter",
		Name:      "poll_iterations",
		Help:      "Number of status queries issued per transaction.",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
	}, []string{"network", "outcome"})
	submitterSealDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flowkms",
		Subsystem: "transaction_submitter",
		Name:      "await_duration_seconds",
		Help:      "Time from submission to terminal status.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120, 300},
	}, []string{"network", "outcome"})
)

// TransactionSubmitter tracks metrics for the submit-and-await loop.
type TransactionSubmitter struct {
	network string
}

// NewTransactionSubmitter constructs a TransactionSubmitter metrics collector.
func NewTransactionSubmitter(network string) *TransactionSubmitter {
	if network == "" {
		network = "unknown"
	}
	return &TransactionSubmitter{network: network}
}

// ObserveAwait records how a transaction left the polling loop.
// outcome is one of "sealed", "expired", "failed" or "error".
func (m TransactionSubmitter) ObserveAwait(outcome string, polls int, started time.Time) {
	submitterOutcomesTotal.WithLabelValues(m.network, outcome).Inc()
	submitterPollIterations.WithLabelValues(m.network, outcome).Observe(float64(polls))
	submitterSealDuration.WithLabelValues(m.network, outcome).Observe(time.Since(started).Seconds())
}
