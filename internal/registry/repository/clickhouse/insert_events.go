package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

// InsertEvents appends registry events to the event log table.
func (r *Repository) InsertEvents(ctx context.Context, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO registry_events (
	kind,
	block_number,
	block_time,
	account,
	name,
	expires_at,
	amount
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, ev := range events {
		if err = batch.Append(
			string(ev.Kind),
			ev.BlockNumber,
			ev.BlockTime,
			ev.Account.Hex(),
			ev.Name,
			ev.ExpiresAt,
			eventAmount(ev),
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}

func eventAmount(ev model.Event) *big.Int {
	if ev.Amount == nil {
		return new(big.Int)
	}
	return ev.Amount.ToBig()
}
