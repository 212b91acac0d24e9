package model

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Params are the economic parameters of the registry.
type Params struct {
	// Owner is the only address allowed to withdraw the registry balance.
	Owner           common.Address
	PerCharacterFee *uint256.Int
	Deposit         *uint256.Int
	LockPeriod      time.Duration
	MaxGasPrice     *uint256.Int
}

// DefaultParams returns the stock economic parameters for the given owner.
func DefaultParams(owner common.Address) Params {
	return Params{
		Owner:           owner,
		PerCharacterFee: uint256.NewInt(1_000_000_000_000_000),
		Deposit:         uint256.NewInt(10_000_000_000_000_000),
		LockPeriod:      365 * 24 * time.Hour,
		MaxGasPrice:     uint256.NewInt(50_000_000_000),
	}
}

// Validate checks that all parameters are set.
func (p Params) Validate() error {
	if p.Owner == (common.Address{}) {
		return errors.New("registry owner is required")
	}
	if p.PerCharacterFee == nil {
		return errors.New("per character fee is required")
	}
	if p.Deposit == nil {
		return errors.New("deposit amount is required")
	}
	if p.MaxGasPrice == nil {
		return errors.New("max gas price is required")
	}
	if p.LockPeriod < time.Second {
		return errors.New("lock period must be at least one second")
	}
	return nil
}

// LockSeconds returns the lock period in whole seconds.
func (p Params) LockSeconds() uint64 {
	return uint64(p.LockPeriod / time.Second)
}
