package registry

import (
	"context"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

// UnlockDeposit refunds the caller's deposit once its registration has lapsed.
func (r *Registry) UnlockDeposit(ctx context.Context, call model.Call) (*model.Receipt, error) {
	return r.execute(ctx, "unlock_deposit", call, func(tx *txn) error {
		if err := requireNoValue(call); err != nil {
			return err
		}

		acct := tx.account(call.Caller)
		if acct.Name == "" {
			return ErrNoNameRegistered
		}
		if tx.liveName(call.Caller, call.Block.Time) != "" {
			return ErrNameNotExpired
		}
		if !acct.DepositLocked {
			return ErrAlreadyUnlocked
		}

		acct.DepositLocked = false
		if err := tx.pay(call.Caller, r.params.Deposit); err != nil {
			return err
		}
		tx.emit(model.Event{
			Kind:    model.EventDepositRefunded,
			Account: call.Caller,
			Name:    acct.Name,
			Amount:  new(uint256.Int).Set(r.params.Deposit),
		})

		r.logger.Info("deposit unlocked",
			zap.String("owner", call.Caller.Hex()),
			zap.String("name", acct.Name))
		return nil
	})
}
