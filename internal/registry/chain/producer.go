// Package chain produces the blocks registry calls execute in.
package chain

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nameregistry-backend/internal/clock"
	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

// Producer advances the block number and timestamp on a fixed interval. Block
// numbers start after the last persisted block and timestamps strictly increase.
type Producer struct {
	logger   *zap.Logger
	metrics  Metrics
	sleep    clock.SleepFunc
	now      func() time.Time
	interval time.Duration

	mu   sync.RWMutex
	head model.BlockContext
}

// NewProducer builds a Producer whose first block follows last.
func NewProducer(last model.BlockContext, interval time.Duration, metrics Metrics, logger *zap.Logger) (*Producer, error) {
	if interval <= 0 {
		return nil, errors.New("block interval must be positive")
	}
	if metrics == nil {
		return nil, errors.New("block producer metrics is required")
	}

	p := &Producer{
		logger:   logger,
		metrics:  metrics,
		sleep:    clock.SleepWithContext,
		now:      time.Now,
		interval: interval,
	}
	p.head = p.next(last)
	return p, nil
}

// Head returns the block new calls execute in.
func (p *Producer) Head() model.BlockContext {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.head
}

// Run produces a block every interval until the context is canceled.
func (p *Producer) Run(ctx context.Context) error {
	p.logger.Info("block producer started",
		zap.Uint64("head", p.Head().Number),
		zap.Duration("interval", p.interval))
	for {
		if err := p.sleep(ctx, p.interval); err != nil {
			return err
		}
		p.advance()
	}
}

func (p *Producer) advance() model.BlockContext {
	p.mu.Lock()
	head := p.next(p.head)
	p.head = head
	p.mu.Unlock()

	p.metrics.ObserveBlock(head)
	p.logger.Debug("block produced",
		zap.Uint64("number", head.Number),
		zap.Uint64("time", head.Time))
	return head
}

func (p *Producer) next(prev model.BlockContext) model.BlockContext {
	ts := clock.UnixSeconds(p.now())
	if ts <= prev.Time {
		ts = prev.Time + 1
	}
	return model.BlockContext{Number: prev.Number + 1, Time: ts}
}
