package registry

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Digest computes the commitment for a (nonce, name, sender) triple as
// keccak256(nonce || name || sender). Nonce and sender are fixed width, so the
// packed encoding is unambiguous.
func Digest(nonce common.Hash, name string, sender common.Address) common.Hash {
	return crypto.Keccak256Hash(nonce.Bytes(), []byte(name), sender.Bytes())
}
