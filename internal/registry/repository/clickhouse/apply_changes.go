package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

// ApplyChanges writes the rows touched by a committed call. The state row is
// written last and marks the change set as complete.
func (r *Repository) ApplyChanges(ctx context.Context, changes model.ChangeSet) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("apply_changes", err, start)
	}()

	if err = r.insertAccounts(ctx, changes.Version, changes.Accounts); err != nil {
		return err
	}
	if err = r.insertNames(ctx, changes.Version, changes.Names); err != nil {
		return err
	}
	if err = r.insertState(ctx, changes); err != nil {
		return err
	}
	return nil
}

func (r *Repository) insertAccounts(ctx context.Context, version uint64, accounts []model.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	const query = `
INSERT INTO registry_accounts (
	address,
	commitment,
	name,
	deposit_locked,
	last_action_block,
	version
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare accounts batch: %w", err)
	}
	for _, acct := range accounts {
		if err = batch.Append(
			acct.Address.Hex(),
			acct.Commitment.Hex(),
			acct.Name,
			acct.DepositLocked,
			acct.LastActionBlock,
			version,
		); err != nil {
			return fmt.Errorf("append account: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert accounts: %w", err)
	}
	return nil
}

func (r *Repository) insertNames(ctx context.Context, version uint64, names []model.NameRecord) error {
	if len(names) == 0 {
		return nil
	}

	const query = `
INSERT INTO registry_names (
	name,
	owner,
	expires_at,
	version
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare names batch: %w", err)
	}
	for _, rec := range names {
		if err = batch.Append(
			rec.Name,
			rec.Owner.Hex(),
			rec.ExpiresAt,
			version,
		); err != nil {
			return fmt.Errorf("append name: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert names: %w", err)
	}
	return nil
}

func (r *Repository) insertState(ctx context.Context, changes model.ChangeSet) error {
	const query = `
INSERT INTO registry_state (
	id,
	balance,
	block_number,
	block_time,
	version
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare state batch: %w", err)
	}
	if err = batch.Append(
		stateRowID,
		changes.Balance.ToBig(),
		changes.Block.Number,
		changes.Block.Time,
		changes.Version,
	); err != nil {
		return fmt.Errorf("append state: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert state: %w", err)
	}
	return nil
}
