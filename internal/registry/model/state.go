package model

import "github.com/holiman/uint256"

// Snapshot is the full persisted registry state.
type Snapshot struct {
	Accounts []Account
	Names    []NameRecord
	Balance  *uint256.Int
	Head     BlockContext
	Version  uint64
}

// ChangeSet holds the rows touched by one committed call.
type ChangeSet struct {
	// Version increases with every committed call and orders replacements in storage.
	Version  uint64
	Block    BlockContext
	Accounts []Account
	Names    []NameRecord
	Balance  *uint256.Int
}
