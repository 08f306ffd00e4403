package poold

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/x/sigs"
)

// Tx is the transaction format of the pool node: a single message and the
// signatures authorizing it.
type Tx struct {
	Msg        lpstake.Msg          `json:"msg"`
	Signatures []*sigs.StdSignature `json:"signatures"`
}

var _ lpstake.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(raw []byte) (lpstake.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(raw); err != nil {
		return nil, err
	}
	return tx, nil
}

func (tx *Tx) GetMsg() (lpstake.Msg, error) {
	return tx.Msg, nil
}

func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign. Signatures are not part of them.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, "no message to sign")
	}
	return lpstake.MarshalBinary(&Tx{Msg: tx.Msg})
}

func (tx *Tx) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(tx)
}

func (tx *Tx) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, tx)
}
