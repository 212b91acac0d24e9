package registry

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
	"github.com/goodnatureofminers/nameregistry-backend/pkg/safe"
)

// Reveal registers name for the caller once the (nonce, name) pair matches the
// stored commitment and the call carries exactly the fee plus the deposit.
func (r *Registry) Reveal(ctx context.Context, call model.Call, nonce common.Hash, name string) (*model.Receipt, error) {
	return r.execute(ctx, "reveal", call, func(tx *txn) error {
		if err := r.checkThrottle(tx); err != nil {
			return err
		}
		if len(name) <= minNameLength {
			return ErrNameTooShort
		}

		acct := tx.account(call.Caller)
		if Digest(nonce, name, call.Caller) != acct.Commitment {
			return ErrInvalidData
		}

		now := call.Block.Time
		if rec, ok := tx.record(name); ok && rec.LiveAt(now) {
			return ErrAlreadyRegistered
		}

		required, err := r.RequiredPayment(name)
		if err != nil || !call.AttachedValue().Eq(required) {
			return ErrIncorrectPayment
		}
		if tx.liveName(call.Caller, now) != "" {
			return ErrUserAlreadyHasName
		}

		tx.credit(call.AttachedValue())

		expiresAt, err := safe.AddUint64(now, r.params.LockSeconds())
		if err != nil {
			return fmt.Errorf("compute expiry: %w", err)
		}
		tx.setRecord(model.NameRecord{Name: name, Owner: call.Caller, ExpiresAt: expiresAt})
		previous := acct.Name
		acct.Name = name
		acct.LastActionBlock = call.Block.Number

		// A deposit still locked from a lapsed registration rolls forward: the
		// flag drops before the payout and is raised again for the new name.
		if acct.DepositLocked {
			acct.DepositLocked = false
			if err := tx.pay(call.Caller, r.params.Deposit); err != nil {
				return err
			}
			tx.emit(model.Event{
				Kind:    model.EventDepositRefunded,
				Account: call.Caller,
				Name:    previous,
				Amount:  new(uint256.Int).Set(r.params.Deposit),
			})
		}
		acct.DepositLocked = true

		tx.emit(model.Event{
			Kind:      model.EventRegistered,
			Account:   call.Caller,
			Name:      name,
			ExpiresAt: expiresAt,
		})

		r.logger.Info("name registered",
			zap.String("owner", call.Caller.Hex()),
			zap.String("name", name),
			zap.Uint64("expires_at", expiresAt))
		return nil
	})
}
