package registry

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

// Commit stores hash as the caller's blinded commitment, replacing any earlier one.
func (r *Registry) Commit(ctx context.Context, call model.Call, hash common.Hash) (*model.Receipt, error) {
	return r.execute(ctx, "commit", call, func(tx *txn) error {
		if err := requireNoValue(call); err != nil {
			return err
		}
		if err := r.checkThrottle(tx); err != nil {
			return err
		}

		acct := tx.account(call.Caller)
		acct.Commitment = hash
		acct.LastActionBlock = call.Block.Number

		r.logger.Debug("commitment stored",
			zap.String("caller", call.Caller.Hex()),
			zap.Uint64("block", call.Block.Number))
		return nil
	})
}
