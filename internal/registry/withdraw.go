package registry

import (
	"context"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

// WithdrawFees pays the whole registry balance to the owner. The sweep includes
// deposits that are still locked; later unlocks fail until the balance is topped
// up by new registrations.
func (r *Registry) WithdrawFees(ctx context.Context, call model.Call) (*model.Receipt, error) {
	return r.execute(ctx, "withdraw_fees", call, func(tx *txn) error {
		if err := requireNoValue(call); err != nil {
			return err
		}
		if call.Caller != r.params.Owner {
			return ErrUnauthorized
		}

		amount := new(uint256.Int).Set(tx.balance)
		if err := tx.pay(call.Caller, amount); err != nil {
			return err
		}
		tx.emit(model.Event{
			Kind:    model.EventFeesWithdrawn,
			Account: call.Caller,
			Amount:  amount,
		})

		r.logger.Info("fees withdrawn",
			zap.String("owner", call.Caller.Hex()),
			zap.String("amount", amount.Dec()))
		return nil
	})
}
