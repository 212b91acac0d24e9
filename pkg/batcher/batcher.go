// Package batcher buffers items and flushes them in rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add after Stop has been called.
var ErrStopped = errors.New("batcher stopped")

// FlushFunc persists one batch. The slice is owned by the callee.
type FlushFunc[T any] func(ctx context.Context, items []T) error

// Batcher collects items and hands them to a FlushFunc when the buffer is full,
// when the flush interval elapses, and once more on shutdown.
type Batcher[T any] struct {
	flush     FlushFunc[T]
	queue     chan T
	size      int
	interval  time.Duration
	limiter   ratelimit.Limiter
	logger    *zap.Logger
	onFlushed func(err error, items int, started time.Time)

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  chan struct{}
}

// Option configures a Batcher.
type Option[T any] func(*Batcher[T])

// WithFlushObserver registers a callback invoked after every flush attempt.
func WithFlushObserver[T any](observe func(err error, items int, started time.Time)) Option[T] {
	return func(b *Batcher[T]) {
		b.onFlushed = observe
	}
}

// New constructs a Batcher that flushes at most flushesPerSecond times per second.
func New[T any](logger *zap.Logger, flush FlushFunc[T], size int, interval time.Duration, flushesPerSecond int, opts ...Option[T]) *Batcher[T] {
	b := &Batcher[T]{
		flush:    flush,
		queue:    make(chan T, size*2),
		size:     size,
		interval: interval,
		limiter:  ratelimit.New(flushesPerSecond),
		logger:   logger,
		stopped:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start launches the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains queued items, flushes them and waits for the loop to exit.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopped)
	})
	b.wg.Wait()
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stopped:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stopped:
		return ErrStopped
	case b.queue <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	// The final flush must outlive the cancellation that triggered it.
	flushCtx := context.WithoutCancel(ctx)
	buf := make([]T, 0, b.size)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.limiter.Take()
		items := buf
		buf = make([]T, 0, b.size)

		started := time.Now()
		err := b.flush(flushCtx, items)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(items)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(items)))
		}
		if b.onFlushed != nil {
			b.onFlushed(err, len(items), started)
		}
	}

	drain := func() {
		for {
			select {
			case item := <-b.queue:
				buf = append(buf, item)
				if len(buf) >= b.size {
					flush()
				}
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stopped:
			drain()
			return

		case item := <-b.queue:
			buf = append(buf, item)
			if len(buf) >= b.size {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
