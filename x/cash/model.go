package cash

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet holds all coins owned by a single address. It is stored under the
// owner address. A wallet without coins is never stored.
type Wallet struct {
	Coins coin.Coins `json:"coins"`
}

var _ orm.Model = (*Wallet)(nil)

// Marshal serializes the wallet using the application codec.
func (w *Wallet) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(w)
}

// Unmarshal deserializes the wallet using the application codec.
func (w *Wallet) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, w)
}

// Validate requires a normalized, non negative coin set.
func (w *Wallet) Validate() error {
	if w.Coins.IsEmpty() {
		return errors.Field("Coins", errors.ErrEmpty, "wallet without coins")
	}
	if err := w.Coins.Validate(); err != nil {
		return errors.Field("Coins", err, "invalid coins")
	}
	if !w.Coins.IsNonNegative() {
		return errors.Field("Coins", errors.ErrInsufficientBalance, "negative balance")
	}
	return nil
}

// NewBucket returns a bucket for storing wallets keyed by the owner address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}
