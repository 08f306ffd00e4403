package lpstaketest

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/crypto"
)

// NewKey returns a freshly generated ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a signature condition of a freshly generated key.
func NewCondition() lpstake.Condition {
	return NewKey().PublicKey().Condition()
}
