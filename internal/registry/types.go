package registry

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		LoadState(ctx context.Context) (*model.Snapshot, error)
		ApplyChanges(ctx context.Context, changes model.ChangeSet) error
	}
	EventSink interface {
		Publish(ctx context.Context, events []model.Event) error
	}
	Metrics interface {
		Observe(operation, reason string, err error, started time.Time)
	}
)
