package mint

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/gconf"
)

func init() {
	lpstake.RegisterMsg(&MintMsg{}, "mint/mint")
	lpstake.RegisterMsg(&UpdateConfigurationMsg{}, "mint/update_configuration")
}

// MintMsg issues new coins to the recipient.
type MintMsg struct {
	Recipient lpstake.Address `json:"recipient"`
	Amount    coin.Coin       `json:"amount"`
}

var _ lpstake.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return "mint/mint"
}

func (m *MintMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(m)
}

func (m *MintMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, m)
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	errs = errors.AppendField(errs, "Amount", checkNonNegativeAmount(m.Amount))
	return errs
}

// checkNonNegativeAmount fails for negative amounts. Zero is allowed.
func checkNonNegativeAmount(c coin.Coin) error {
	if !c.IsNonNegative() {
		return errors.Wrapf(errors.ErrInvalidAmount, "negative amount is not allowed: %s", c)
	}
	return nil
}

// UpdateConfigurationMsg replaces the non zero fields of the mint
// configuration.
type UpdateConfigurationMsg struct {
	Patch *Configuration `json:"patch"`
}

var _ lpstake.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "mint/update_configuration"
}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(m)
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, m)
}

func (m *UpdateConfigurationMsg) ConfigPatch() gconf.OwnedConfig {
	return m.Patch
}

// Validate will skip any zero fields and validate the set ones.
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Field("Patch", errors.ErrEmpty, "required")
	}
	if len(m.Patch.Owner) != 0 {
		return errors.AppendField(nil, "Patch.Owner", m.Patch.Owner.Validate())
	}
	return nil
}
