package eventlog

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertEvents(ctx context.Context, events []model.Event) error
	}
	Metrics interface {
		ObservePublished(kind string)
		ObserveFlush(err error, events int, started time.Time)
	}
)
