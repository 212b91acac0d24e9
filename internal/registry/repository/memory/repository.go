// Package memory keeps registry state in process memory.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

// Repository is an in-memory registry store and event log.
type Repository struct {
	mu       sync.RWMutex
	accounts map[common.Address]model.Account
	names    map[string]model.NameRecord
	balance  *uint256.Int
	head     model.BlockContext
	version  uint64
	events   []model.Event
}

// NewRepository returns an empty Repository.
func NewRepository() *Repository {
	return &Repository{
		accounts: make(map[common.Address]model.Account),
		names:    make(map[string]model.NameRecord),
		balance:  new(uint256.Int),
	}
}

// LoadState returns a copy of the stored state.
func (r *Repository) LoadState(ctx context.Context) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := &model.Snapshot{
		Accounts: make([]model.Account, 0, len(r.accounts)),
		Names:    make([]model.NameRecord, 0, len(r.names)),
		Balance:  new(uint256.Int).Set(r.balance),
		Head:     r.head,
		Version:  r.version,
	}
	for _, acct := range r.accounts {
		snapshot.Accounts = append(snapshot.Accounts, acct)
	}
	for _, rec := range r.names {
		snapshot.Names = append(snapshot.Names, rec)
	}
	slices.SortFunc(snapshot.Accounts, func(a, b model.Account) int {
		return a.Address.Cmp(b.Address)
	})
	slices.SortFunc(snapshot.Names, func(a, b model.NameRecord) int {
		return strings.Compare(a.Name, b.Name)
	})
	return snapshot, nil
}

// ApplyChanges stores the rows of a committed call. Change sets must arrive in
// increasing version order.
func (r *Repository) ApplyChanges(ctx context.Context, changes model.ChangeSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if changes.Version <= r.version {
		return fmt.Errorf("stale change set version %d, stored %d", changes.Version, r.version)
	}
	for _, acct := range changes.Accounts {
		r.accounts[acct.Address] = acct
	}
	for _, rec := range changes.Names {
		r.names[rec.Name] = rec
	}
	if changes.Balance != nil {
		r.balance = new(uint256.Int).Set(changes.Balance)
	}
	r.head = changes.Block
	r.version = changes.Version
	return nil
}

// InsertEvents appends events to the log.
func (r *Repository) InsertEvents(ctx context.Context, events []model.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, events...)
	return nil
}

// Events returns a copy of the event log.
func (r *Repository) Events() []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.events)
}
