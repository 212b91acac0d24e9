package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
	"github.com/goodnatureofminers/nameregistry-backend/pkg/workerpool"
)

const stateRowID uint8 = 1

// LoadState reads the latest committed snapshot. A change set is committed once
// its state row exists; account and name rows of any other version belong to a
// failed write and are ignored, even after later change sets succeed.
func (r *Repository) LoadState(ctx context.Context) (*model.Snapshot, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_state", err, start)
	}()

	snapshot, err := r.loadHead(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.Version == 0 {
		return snapshot, nil
	}

	loaders := []func(context.Context) error{
		func(ctx context.Context) error {
			accounts, loadErr := r.loadAccounts(ctx, snapshot.Version)
			snapshot.Accounts = accounts
			return loadErr
		},
		func(ctx context.Context) error {
			names, loadErr := r.loadNames(ctx, snapshot.Version)
			snapshot.Names = names
			return loadErr
		},
	}
	err = workerpool.Process(ctx, len(loaders), loaders, func(ctx context.Context, load func(context.Context) error) error {
		return load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *Repository) loadHead(ctx context.Context) (snapshot *model.Snapshot, err error) {
	const query = `
SELECT balance, block_number, block_time, version
FROM registry_state
WHERE id = ?
ORDER BY version DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, stateRowID)
	if err != nil {
		return nil, fmt.Errorf("query registry state: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	snapshot = &model.Snapshot{Balance: new(uint256.Int)}
	if rows.Next() {
		var balance big.Int
		if err = rows.Scan(&balance, &snapshot.Head.Number, &snapshot.Head.Time, &snapshot.Version); err != nil {
			return nil, fmt.Errorf("scan registry state: %w", err)
		}
		var overflow bool
		if snapshot.Balance, overflow = uint256.FromBig(&balance); overflow {
			return nil, fmt.Errorf("registry balance %s overflows uint256", balance.String())
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registry state: %w", err)
	}
	return snapshot, nil
}

func (r *Repository) loadAccounts(ctx context.Context, version uint64) (accounts []model.Account, err error) {
	const query = `
SELECT
	address,
	argMax(commitment, version),
	argMax(name, version),
	argMax(deposit_locked, version),
	argMax(last_action_block, version)
FROM registry_accounts
WHERE version <= ?
	AND version IN (SELECT version FROM registry_state WHERE id = ?)
GROUP BY address
ORDER BY address`

	rows, err := r.conn.Query(ctx, query, version, stateRowID)
	if err != nil {
		return nil, fmt.Errorf("query registry accounts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			address    string
			commitment string
			acct       model.Account
		)
		if err = rows.Scan(&address, &commitment, &acct.Name, &acct.DepositLocked, &acct.LastActionBlock); err != nil {
			return nil, fmt.Errorf("scan registry account: %w", err)
		}
		acct.Address = common.HexToAddress(address)
		acct.Commitment = common.HexToHash(commitment)
		accounts = append(accounts, acct)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registry accounts: %w", err)
	}
	return accounts, nil
}

func (r *Repository) loadNames(ctx context.Context, version uint64) (names []model.NameRecord, err error) {
	const query = `
SELECT
	name,
	argMax(owner, version),
	argMax(expires_at, version)
FROM registry_names
WHERE version <= ?
	AND version IN (SELECT version FROM registry_state WHERE id = ?)
GROUP BY name
ORDER BY name`

	rows, err := r.conn.Query(ctx, query, version, stateRowID)
	if err != nil {
		return nil, fmt.Errorf("query registry names: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			owner string
			rec   model.NameRecord
		)
		if err = rows.Scan(&rec.Name, &owner, &rec.ExpiresAt); err != nil {
			return nil, fmt.Errorf("scan registry name: %w", err)
		}
		rec.Owner = common.HexToAddress(owner)
		names = append(names, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registry names: %w", err)
	}
	return names, nil
}
