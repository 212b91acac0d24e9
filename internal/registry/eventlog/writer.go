// Package eventlog persists registry events in the background.
package eventlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
	"github.com/goodnatureofminers/nameregistry-backend/pkg/batcher"
)

const (
	defaultBatchSize        = 500
	defaultFlushInterval    = time.Second
	defaultFlushesPerSecond = 20
)

// Config tunes event batching.
type Config struct {
	BatchSize        int
	FlushInterval    time.Duration
	FlushesPerSecond int
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = defaultFlushInterval
	}
	if c.FlushesPerSecond <= 0 {
		c.FlushesPerSecond = defaultFlushesPerSecond
	}
	return c
}

// Writer queues published events and writes them to the repository in batches.
type Writer struct {
	repo    Repository
	metrics Metrics
	logger  *zap.Logger
	batcher *batcher.Batcher[model.Event]
}

// NewWriter builds a Writer. Start must be called before Publish.
func NewWriter(repo Repository, metrics Metrics, logger *zap.Logger, cfg Config) (*Writer, error) {
	if repo == nil {
		return nil, errors.New("event repository is required")
	}
	if metrics == nil {
		return nil, errors.New("event writer metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg = cfg.withDefaults()
	w := &Writer{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
	w.batcher = batcher.New(
		logger.Named("event_batcher"),
		w.flush,
		cfg.BatchSize,
		cfg.FlushInterval,
		cfg.FlushesPerSecond,
		batcher.WithFlushObserver[model.Event](metrics.ObserveFlush),
	)
	return w, nil
}

// Start launches the background flush loop.
func (w *Writer) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes queued events and waits for the flush loop to exit.
func (w *Writer) Stop() {
	w.batcher.Stop()
}

// Publish queues events in order.
func (w *Writer) Publish(ctx context.Context, events []model.Event) error {
	for _, ev := range events {
		if err := w.batcher.Add(ctx, ev); err != nil {
			return fmt.Errorf("queue %s event: %w", ev.Kind, err)
		}
		w.metrics.ObservePublished(string(ev.Kind))
	}
	return nil
}

func (w *Writer) flush(ctx context.Context, events []model.Event) error {
	if err := w.repo.InsertEvents(ctx, events); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
