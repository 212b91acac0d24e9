// Package model defines domain models for the name registry.
package model

import "github.com/ethereum/go-ethereum/common"

// Account groups the per-address registry state.
type Account struct {
	Address common.Address
	// Commitment is the latest blinded (nonce, name, address) digest.
	Commitment common.Hash
	// Name is the name currently or most recently registered by the address.
	Name          string
	DepositLocked bool
	// LastActionBlock is the block of the latest commit or reveal; zero means never.
	LastActionBlock uint64
}

// NameRecord stores ownership of a registered name.
type NameRecord struct {
	Name      string
	Owner     common.Address
	ExpiresAt uint64
}

// LiveAt reports whether the record is still owned at the given unix time.
func (r NameRecord) LiveAt(now uint64) bool {
	return r.ExpiresAt > now
}
