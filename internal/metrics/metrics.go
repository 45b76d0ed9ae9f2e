// Package metrics defines and registers custom Prometheus metrics for the
// Keyspaces e2e harness.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Wait result label values.
const (
	ResultConverged = "converged"
	ResultTimeout   = "timeout"
	ResultRejected  = "rejected"
	ResultError     = "error"
)

var (
	// waitTotal counts wait operations per resource kind and outcome.
	waitTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyspaces_e2e_wait_total",
			Help: "Total number of convergence waits against the Keyspaces API.",
		},
		[]string{"resource", "result"},
	)

	// waitDuration tracks how long waits take until they resolve.
	waitDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "keyspaces_e2e_wait_duration_seconds",
			Help:    "Duration of convergence waits in seconds.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
		},
		[]string{"resource"},
	)
)

func init() {
	ctrlmetrics.Registry.MustRegister(
		waitTotal,
		waitDuration,
	)
}

// registry returns the controller-runtime metrics registry. This is exposed
// for testing purposes so that tests can gather metrics from the same
// registry where custom metrics are registered.
func registry() prometheus.Gatherer {
	return ctrlmetrics.Registry
}

// RecordWait records one completed wait operation. The resource is
// "keyspace" or "table"; the result is one of the Result constants.
func RecordWait(resource, result string, duration time.Duration) {
	waitTotal.WithLabelValues(resource, result).Inc()
	waitDuration.WithLabelValues(resource).Observe(duration.Seconds())
}
