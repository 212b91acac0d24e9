package model

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// BlockContext identifies the block a call executes in.
type BlockContext struct {
	Number uint64
	Time   uint64
}

// Call is the transaction envelope of a registry operation.
type Call struct {
	Caller   common.Address
	Value    *uint256.Int
	GasPrice *uint256.Int
	Block    BlockContext
}

// AttachedValue returns the call value, treating nil as zero.
func (c Call) AttachedValue() *uint256.Int {
	if c.Value == nil {
		return new(uint256.Int)
	}
	return c.Value
}

// AttachedGasPrice returns the call gas price, treating nil as zero.
func (c Call) AttachedGasPrice() *uint256.Int {
	if c.GasPrice == nil {
		return new(uint256.Int)
	}
	return c.GasPrice
}
