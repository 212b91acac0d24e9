package chain

import "github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveBlock(head model.BlockContext)
	}
)
