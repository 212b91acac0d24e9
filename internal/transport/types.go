package transport

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/nameregistry-backend/internal/registry/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Registry interface {
		Commit(ctx context.Context, call model.Call, hash common.Hash) (*model.Receipt, error)
		Reveal(ctx context.Context, call model.Call, nonce common.Hash, name string) (*model.Receipt, error)
		Renew(ctx context.Context, call model.Call, name string) (*model.Receipt, error)
		UnlockDeposit(ctx context.Context, call model.Call) (*model.Receipt, error)
		WithdrawFees(ctx context.Context, call model.Call) (*model.Receipt, error)
		ResolveName(addr common.Address, now uint64) string
		RegistrationFee(name string) (*uint256.Int, error)
		RequiredPayment(name string) (*uint256.Int, error)
		Params() model.Params
	}
	Chain interface {
		Head() model.BlockContext
	}
)
