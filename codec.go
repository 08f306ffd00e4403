package lpstake

import (
	"github.com/lpstake/lpstake/errors"
	amino "github.com/tendermint/go-amino"
)

// Codec is the binary codec shared by all models, messages and
// transactions. Extensions register the concrete types that travel behind
// an interface (messages) with RegisterMsg.
var Codec = amino.NewCodec()

func init() {
	Codec.RegisterInterface((*Msg)(nil), nil)
}

// RegisterMsg makes a message implementation decodable when it is carried as
// a Msg inside of a transaction. Name must be unique and stable, it is part
// of the binary representation.
func RegisterMsg(msg Msg, name string) {
	Codec.RegisterConcrete(msg, name, nil)
}

// MarshalBinary serializes given value using the shared codec. It is meant
// to implement the Marshal method of models and messages.
func MarshalBinary(o interface{}) ([]byte, error) {
	raw, err := Codec.MarshalBinaryBare(o)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "marshal %T: %s", o, err)
	}
	return raw, nil
}

// UnmarshalBinary deserializes raw data into the value that ptr points to.
// It is meant to implement the Unmarshal method of models and messages.
func UnmarshalBinary(raw []byte, ptr interface{}) error {
	if len(raw) == 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "unmarshal %T: no data", ptr)
	}
	if err := Codec.UnmarshalBinaryBare(raw, ptr); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "unmarshal %T: %s", ptr, err)
	}
	return nil
}
