// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nameregistry",
		Subsystem: "registry",
		Name:      "operations_total",
		Help:      "Count of registry calls by outcome.",
	}, []string{"operation", "status", "reason"})

	registryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nameregistry",
		Subsystem: "registry",
		Name:      "operation_duration_seconds",
		Help:      "Duration of registry calls including persistence.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"operation", "status"})
)

// Registry tracks metrics for registry calls.
type Registry struct{}

// NewRegistry creates a Registry metrics collector.
func NewRegistry() *Registry {
	return &Registry{}
}

// Observe records the outcome of a registry call. Rejections are labelled with
// their reason code; failures without one are reported as "internal".
func (m Registry) Observe(operation, reason string, err error, started time.Time) {
	status := "success"
	switch {
	case err == nil:
		reason = "none"
	case reason != "":
		status = "rejected"
	default:
		status = "error"
		reason = "internal"
	}

	registryOperationsTotal.WithLabelValues(operation, status, reason).Inc()
	registryOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
