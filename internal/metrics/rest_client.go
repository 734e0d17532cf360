package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	restClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flowkms",
		Subsystem: "rest_client",
		Name:      "operations_total",
		Help:      "Count of access node REST operations.",
	}, []string{"operation", "network", "status"})
	restClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flowkms",
		Subsystem: "rest_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of access node REST operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// RESTClient tracks metrics for calls to the access node.
type RESTClient struct {
	network string
}

// NewRESTClient constructs a metrics collector for access node calls.
func NewRESTClient(network string) *RESTClient {
	if network == "" {
		network = "unknown"
	}
	return &RESTClient{network: network}
}

// Observe records a single call outcome and duration.
func (m RESTClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	restClientRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	restClientRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
