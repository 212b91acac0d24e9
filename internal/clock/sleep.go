// Package clock provides time helpers that respect context cancellation.
package clock

import (
	"context"
	"time"
)

// SleepFunc pauses for a duration or until the context is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for d, returning the context error if ctx ends first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UnixSeconds returns t as unix seconds, clamping times before the epoch to zero.
func UnixSeconds(t time.Time) uint64 {
	sec := t.Unix()
	if sec < 0 {
		return 0
	}
	return uint64(sec)
}
