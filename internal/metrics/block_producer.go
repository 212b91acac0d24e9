package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

var (
	blockProducerBlocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nameregistry",
		Subsystem: "block_producer",
		Name:      "blocks_total",
		Help:      "Count of produced blocks.",
	})

	blockProducerHeadNumber = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "nameregistry",
		Subsystem: "block_producer",
		Name:      "head_number",
		Help:      "Number of the current head block.",
	})

	blockProducerHeadTime = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "nameregistry",
		Subsystem: "block_producer",
		Name:      "head_timestamp_seconds",
		Help:      "Timestamp of the current head block.",
	})
)

// BlockProducer tracks metrics for the block producer.
type BlockProducer struct{}

// NewBlockProducer creates a BlockProducer metrics collector.
func NewBlockProducer() *BlockProducer {
	return &BlockProducer{}
}

// ObserveBlock records a newly produced head.
func (m BlockProducer) ObserveBlock(head model.BlockContext) {
	blockProducerBlocksTotal.Inc()
	blockProducerHeadNumber.Set(float64(head.Number))
	blockProducerHeadTime.Set(float64(head.Time))
}
