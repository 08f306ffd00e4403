package sigs

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/lpstaketest"
)

// StdTx is a signed transaction carrying a mock message.
type StdTx struct {
	lpstake.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ lpstake.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	msg := &lpstaketest.Msg{RoutePath: "sigs/test", Serialized: payload}
	return &StdTx{Tx: &lpstaketest.Tx{Msg: msg}}
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}
