package registry

import (
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

// txn stages the writes of one call on top of the committed registry state.
// Nothing reaches the registry until commit, so a rejected call leaves no trace.
type txn struct {
	base      *Registry
	call      model.Call
	accounts  map[common.Address]*model.Account
	names     map[string]*model.NameRecord
	balance   *uint256.Int
	events    []model.Event
	transfers []model.Transfer
}

func (r *Registry) begin(call model.Call) *txn {
	return &txn{
		base:     r,
		call:     call,
		accounts: make(map[common.Address]*model.Account),
		names:    make(map[string]*model.NameRecord),
		balance:  new(uint256.Int).Set(r.balance),
	}
}

// account returns the staged state of addr, copying it from the registry on first use.
func (t *txn) account(addr common.Address) *model.Account {
	if acct, ok := t.accounts[addr]; ok {
		return acct
	}
	acct := model.Account{Address: addr}
	if existing, ok := t.base.accounts[addr]; ok {
		acct = *existing
	}
	t.accounts[addr] = &acct
	return &acct
}

func (t *txn) record(name string) (model.NameRecord, bool) {
	if rec, ok := t.names[name]; ok {
		return *rec, true
	}
	if rec, ok := t.base.names[name]; ok {
		return *rec, true
	}
	return model.NameRecord{}, false
}

func (t *txn) setRecord(rec model.NameRecord) {
	t.names[rec.Name] = &rec
}

// liveName returns the name addr currently owns, or an empty string when its
// latest registration has lapsed or the name was taken over by someone else.
func (t *txn) liveName(addr common.Address, now uint64) string {
	acct := t.account(addr)
	if acct.Name == "" {
		return ""
	}
	rec, ok := t.record(acct.Name)
	if !ok || rec.Owner != addr || !rec.LiveAt(now) {
		return ""
	}
	return acct.Name
}

func (t *txn) credit(amount *uint256.Int) {
	t.balance.Add(t.balance, amount)
}

// pay debits the registry balance and records an outbound transfer.
func (t *txn) pay(to common.Address, amount *uint256.Int) error {
	if t.balance.Lt(amount) {
		return ErrInsufficientBalance
	}
	t.balance.Sub(t.balance, amount)
	t.transfers = append(t.transfers, model.Transfer{To: to, Amount: new(uint256.Int).Set(amount)})
	return nil
}

func (t *txn) emit(ev model.Event) {
	ev.BlockNumber = t.call.Block.Number
	ev.BlockTime = t.call.Block.Time
	t.events = append(t.events, ev)
}

func (t *txn) changes(version uint64) model.ChangeSet {
	accounts := make([]model.Account, 0, len(t.accounts))
	for _, acct := range t.accounts {
		accounts = append(accounts, *acct)
	}
	slices.SortFunc(accounts, func(a, b model.Account) int {
		return a.Address.Cmp(b.Address)
	})

	names := make([]model.NameRecord, 0, len(t.names))
	for _, rec := range t.names {
		names = append(names, *rec)
	}
	slices.SortFunc(names, func(a, b model.NameRecord) int {
		return strings.Compare(a.Name, b.Name)
	})

	return model.ChangeSet{
		Version:  version,
		Block:    t.call.Block,
		Accounts: accounts,
		Names:    names,
		Balance:  new(uint256.Int).Set(t.balance),
	}
}

func (t *txn) commit() {
	for addr, acct := range t.accounts {
		t.base.accounts[addr] = acct
	}
	for name, rec := range t.names {
		t.base.names[name] = rec
	}
	t.base.balance = t.balance
	t.base.head = t.call.Block
}

func (t *txn) receipt() *model.Receipt {
	return &model.Receipt{
		Block:     t.call.Block,
		Events:    t.events,
		Transfers: t.transfers,
	}
}
