package registry

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
	"github.com/goodnatureofminers/nameregistry-backend/pkg/safe"
)

// Renew restarts the lock period of a live name owned by the caller. A record
// expiring exactly now counts as expired.
func (r *Registry) Renew(ctx context.Context, call model.Call, name string) (*model.Receipt, error) {
	return r.execute(ctx, "renew", call, func(tx *txn) error {
		if err := requireNoValue(call); err != nil {
			return err
		}

		now := call.Block.Time
		rec, ok := tx.record(name)
		if !ok || rec.Owner != call.Caller || !rec.LiveAt(now) {
			return ErrNotRegisteredOrExpired
		}

		expiresAt, err := safe.AddUint64(now, r.params.LockSeconds())
		if err != nil {
			return fmt.Errorf("compute expiry: %w", err)
		}
		rec.ExpiresAt = expiresAt
		tx.setRecord(rec)
		tx.emit(model.Event{
			Kind:      model.EventRenewed,
			Account:   call.Caller,
			Name:      name,
			ExpiresAt: rec.ExpiresAt,
		})

		r.logger.Info("name renewed",
			zap.String("owner", call.Caller.Hex()),
			zap.String("name", name),
			zap.Uint64("expires_at", rec.ExpiresAt))
		return nil
	})
}
