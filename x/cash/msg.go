package cash

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
)

func init() {
	lpstake.RegisterMsg(&SendMsg{}, "cash/send")
}

const maxMemoSize int = 128

// SendMsg requests moving tokens from the source wallet to the destination
// one. The source must sign the transaction.
type SendMsg struct {
	Source      lpstake.Address `json:"source"`
	Destination lpstake.Address `json:"destination"`
	Amount      *coin.Coin      `json:"amount"`
	Memo        string          `json:"memo,omitempty"`
}

var _ lpstake.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

func (m *SendMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(m)
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, m)
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var errs error
	switch {
	case coin.IsEmpty(m.Amount):
		errs = errors.AppendField(errs, "Amount", errors.ErrInvalidAmount)
	case !m.Amount.IsPositive():
		errs = errors.AppendField(errs, "Amount", errors.Wrapf(errors.ErrInvalidAmount, "non-positive %s", m.Amount))
	default:
		errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	}
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if len(m.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo", errors.Wrap(errors.ErrInvalidInput, "memo too long"))
	}
	return errs
}
