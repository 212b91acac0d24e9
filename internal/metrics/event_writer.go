package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventWriterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nameregistry",
		Subsystem: "event_writer",
		Name:      "flush_total",
		Help:      "Count of event batch flushes.",
	}, []string{"status"})

	eventWriterFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nameregistry",
		Subsystem: "event_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of event batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	eventWriterFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "nameregistry",
		Subsystem: "event_writer",
		Name:      "flush_size",
		Help:      "Number of events per flushed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	eventWriterPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nameregistry",
		Subsystem: "event_writer",
		Name:      "published_total",
		Help:      "Count of events queued for writing.",
	}, []string{"kind"})
)

// EventWriter tracks metrics for the registry event log writer.
type EventWriter struct{}

// NewEventWriter creates an EventWriter metrics collector.
func NewEventWriter() *EventWriter {
	return &EventWriter{}
}

// ObservePublished counts an event queued for writing.
func (m EventWriter) ObservePublished(kind string) {
	eventWriterPublishedTotal.WithLabelValues(kind).Inc()
}

// ObserveFlush records a flush attempt of a batch of events.
func (m EventWriter) ObserveFlush(err error, events int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	eventWriterFlushTotal.WithLabelValues(status).Inc()
	eventWriterFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	eventWriterFlushSize.Observe(float64(events))
}
