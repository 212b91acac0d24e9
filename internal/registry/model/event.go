package model

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// EventKind names an event emitted by the registry.
type EventKind string

var (
	// EventRegistered is emitted when a name is revealed and registered.
	EventRegistered EventKind = "registered"
	// EventRenewed is emitted when the owner extends a live registration.
	EventRenewed EventKind = "renewed"
	// EventDepositRefunded is emitted when a locked deposit is paid back.
	EventDepositRefunded EventKind = "deposit_refunded"
	// EventFeesWithdrawn is emitted when the owner sweeps the registry balance.
	EventFeesWithdrawn EventKind = "fees_withdrawn"
)

// Event is a registry log entry.
type Event struct {
	Kind        EventKind
	BlockNumber uint64
	BlockTime   uint64
	Account     common.Address
	Name        string
	ExpiresAt   uint64
	Amount      *uint256.Int
}

// Transfer is an outbound value payment made by the registry.
type Transfer struct {
	To     common.Address
	Amount *uint256.Int
}

// Receipt describes the outcome of a committed call.
type Receipt struct {
	Block     BlockContext
	Events    []Event
	Transfers []Transfer
}
