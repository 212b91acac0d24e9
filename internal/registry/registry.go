// Package registry implements the commit-reveal name registry state machine.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
	"github.com/goodnatureofminers/nameregistry-backend/pkg/safe"
)

const minNameLength = 2

// Registry owns the registry state. Every operation runs as one staged
// transaction under mu and either commits fully or leaves no effect.
type Registry struct {
	params  model.Params
	store   Store
	sink    EventSink
	metrics Metrics
	logger  *zap.Logger

	mu       sync.Mutex
	accounts map[common.Address]*model.Account
	names    map[string]*model.NameRecord
	balance  *uint256.Int
	version  uint64
	head     model.BlockContext
	// published is closed once the events of the latest committed call with
	// events have been handed to the sink.
	published chan struct{}
}

// New builds an empty Registry. Call Load to restore persisted state.
func New(params model.Params, store Store, sink EventSink, metrics Metrics, logger *zap.Logger) (*Registry, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("validate params: %w", err)
	}
	if store == nil {
		return nil, errors.New("registry store is required")
	}
	if sink == nil {
		return nil, errors.New("registry event sink is required")
	}
	if metrics == nil {
		return nil, errors.New("registry metrics is required")
	}

	published := make(chan struct{})
	close(published)

	return &Registry{
		params:    params,
		store:     store,
		sink:      sink,
		metrics:   metrics,
		logger:    logger,
		accounts:  make(map[common.Address]*model.Account),
		names:     make(map[string]*model.NameRecord),
		balance:   new(uint256.Int),
		published: published,
	}, nil
}

// Load replaces the in-memory state with the snapshot held by the store.
func (r *Registry) Load(ctx context.Context) error {
	snapshot, err := r.store.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = make(map[common.Address]*model.Account, len(snapshot.Accounts))
	for _, acct := range snapshot.Accounts {
		acct := acct
		r.accounts[acct.Address] = &acct
	}
	r.names = make(map[string]*model.NameRecord, len(snapshot.Names))
	for _, rec := range snapshot.Names {
		rec := rec
		r.names[rec.Name] = &rec
	}
	r.balance = new(uint256.Int)
	if snapshot.Balance != nil {
		r.balance.Set(snapshot.Balance)
	}
	r.version = snapshot.Version
	r.head = snapshot.Head

	r.logger.Info("registry state loaded",
		zap.Int("accounts", len(snapshot.Accounts)),
		zap.Int("names", len(snapshot.Names)),
		zap.String("balance", r.balance.Dec()),
		zap.Uint64("head", snapshot.Head.Number))
	return nil
}

func (r *Registry) execute(ctx context.Context, operation string, call model.Call, apply func(tx *txn) error) (receipt *model.Receipt, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(operation, Code(err), err, started)
	}()

	receipt, prev, done, err := r.commitCall(ctx, call, apply)
	if err != nil {
		return nil, err
	}
	if done == nil {
		return receipt, nil
	}

	// Events reach the sink in commit order without holding the state lock.
	defer close(done)
	<-prev
	if pubErr := r.sink.Publish(ctx, receipt.Events); pubErr != nil {
		r.logger.Error("publish events failed",
			zap.String("operation", operation),
			zap.Int("events", len(receipt.Events)),
			zap.Error(pubErr))
	}
	return receipt, nil
}

// commitCall applies one call under the state lock. When the call emitted events
// it also takes the next publish turn: prev is closed when the previous
// publisher is done and done must be closed once this call has published.
func (r *Registry) commitCall(ctx context.Context, call model.Call, apply func(tx *txn) error) (receipt *model.Receipt, prev <-chan struct{}, done chan struct{}, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := r.begin(call)
	if err = apply(tx); err != nil {
		return nil, nil, nil, err
	}

	// Versions are never reused, so rows of a failed change set can never be
	// mistaken for a committed one.
	r.version++
	if err = r.store.ApplyChanges(ctx, tx.changes(r.version)); err != nil {
		return nil, nil, nil, fmt.Errorf("apply changes: %w", err)
	}
	tx.commit()

	receipt = tx.receipt()
	if len(receipt.Events) == 0 {
		return receipt, nil, nil, nil
	}
	prev, done = r.published, make(chan struct{})
	r.published = done
	return receipt, prev, done, nil
}

// checkThrottle enforces one commit or reveal per block per address and the
// gas price ceiling.
func (r *Registry) checkThrottle(tx *txn) error {
	acct := tx.account(tx.call.Caller)
	if tx.call.Block.Number <= acct.LastActionBlock {
		return ErrRateLimited
	}
	if tx.call.AttachedGasPrice().Gt(r.params.MaxGasPrice) {
		return ErrGasPriceTooHigh
	}
	return nil
}

func requireNoValue(call model.Call) error {
	if !call.AttachedValue().IsZero() {
		return ErrIncorrectPayment
	}
	return nil
}

// RegistrationFee returns the non-refundable fee for name: one per-character fee per byte.
func (r *Registry) RegistrationFee(name string) (*uint256.Int, error) {
	length, err := safe.Uint64(len(name))
	if err != nil {
		return nil, err
	}
	fee, overflow := new(uint256.Int).MulOverflow(r.params.PerCharacterFee, uint256.NewInt(length))
	if overflow {
		return nil, fmt.Errorf("registration fee for %d bytes overflows", length)
	}
	return fee, nil
}

// RequiredPayment returns the exact value a reveal of name must carry.
func (r *Registry) RequiredPayment(name string) (*uint256.Int, error) {
	fee, err := r.RegistrationFee(name)
	if err != nil {
		return nil, err
	}
	total, overflow := new(uint256.Int).AddOverflow(fee, r.params.Deposit)
	if overflow {
		return nil, fmt.Errorf("required payment for %q overflows", name)
	}
	return total, nil
}

// ResolveName returns the live name of addr at the given unix time, or "".
func (r *Registry) ResolveName(addr common.Address, now uint64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.begin(model.Call{}).liveName(addr, now)
}

// Record returns the stored record of name, expired or not.
func (r *Registry) Record(name string) (model.NameRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.names[name]
	if !ok {
		return model.NameRecord{}, false
	}
	return *rec, true
}

// Account returns the stored state of addr.
func (r *Registry) Account(addr common.Address) (model.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[addr]
	if !ok {
		return model.Account{}, false
	}
	return *acct, true
}

// Balance returns the value currently held by the registry.
func (r *Registry) Balance() *uint256.Int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return new(uint256.Int).Set(r.balance)
}

// Head returns the block of the latest committed call.
func (r *Registry) Head() model.BlockContext {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.head
}

func (r *Registry) Params() model.Params {
	return r.params
}
