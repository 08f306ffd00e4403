package sigs

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
)

func init() {
	lpstake.RegisterMsg(&BumpSequenceMsg{}, pathBumpSequenceMsg)
}

const (
	pathBumpSequenceMsg = "sigs/bump_sequence"

	maxSequenceIncrement = 1000
	minSequenceIncrement = 1
)

// BumpSequenceMsg increments the sequence of the main signer. The total
// increment includes the one done by the signature check itself.
type BumpSequenceMsg struct {
	Increment uint32 `json:"increment"`
}

var _ lpstake.Msg = (*BumpSequenceMsg)(nil)

func (msg *BumpSequenceMsg) Validate() error {
	if msg.Increment < minSequenceIncrement {
		return errors.Wrapf(errors.ErrInvalidMsg, "increment must be at least %d", minSequenceIncrement)
	}
	if msg.Increment > maxSequenceIncrement {
		return errors.Wrapf(errors.ErrInvalidMsg, "increment must not be greater than %d", maxSequenceIncrement)
	}
	return nil
}

func (BumpSequenceMsg) Path() string {
	return pathBumpSequenceMsg
}

func (msg *BumpSequenceMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(msg)
}

func (msg *BumpSequenceMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, msg)
}
