package pool

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/gconf"
)

func init() {
	lpstake.RegisterMsg(&InitializeMsg{}, "pool/initialize")
	lpstake.RegisterMsg(&FundMsg{}, "pool/fund")
	lpstake.RegisterMsg(&ExtendMsg{}, "pool/extend")
	lpstake.RegisterMsg(&DepositMsg{}, "pool/deposit")
	lpstake.RegisterMsg(&WithdrawMsg{}, "pool/withdraw")
	lpstake.RegisterMsg(&ClaimMsg{}, "pool/claim")
	lpstake.RegisterMsg(&UpdateConfigurationMsg{}, "pool/update_configuration")
}

// InitializeMsg creates the pool. The admin must sign.
type InitializeMsg struct {
	Admin           lpstake.Address `json:"admin"`
	LiquidityTicker string          `json:"liquidity_ticker"`
	RewardTicker    string          `json:"reward_ticker"`
}

var _ lpstake.Msg = (*InitializeMsg)(nil)

func (InitializeMsg) Path() string {
	return "pool/initialize"
}

func (m *InitializeMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(m)
}

func (m *InitializeMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, m)
}

func (m *InitializeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	errs = errors.AppendField(errs, "LiquidityTicker", validTicker(m.LiquidityTicker))
	errs = errors.AppendField(errs, "RewardTicker", validTicker(m.RewardTicker))
	if m.LiquidityTicker == m.RewardTicker {
		errs = errors.AppendField(errs, "RewardTicker",
			errors.Wrap(errors.ErrInvalidInput, "must differ from the liquidity ticker"))
	}
	return errs
}

// FundMsg starts a new emission window. RewardAmount is pulled from the
// admin and emitted over Duration seconds.
type FundMsg struct {
	Admin        lpstake.Address `json:"admin"`
	RewardAmount int64           `json:"reward_amount"`
	Duration     int64           `json:"duration"`
}

var _ lpstake.Msg = (*FundMsg)(nil)

func (FundMsg) Path() string {
	return "pool/fund"
}

func (m *FundMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(m)
}

func (m *FundMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, m)
}

func (m *FundMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	if m.RewardAmount < 0 {
		errs = errors.AppendField(errs, "RewardAmount", errors.ErrInvalidAmount)
	}
	if m.Duration <= 0 {
		errs = errors.AppendField(errs, "Duration", ErrInvalidDuration)
	}
	return errs
}

// ExtendMsg adds reward and time to the current emission window.
type ExtendMsg struct {
	Admin              lpstake.Address `json:"admin"`
	AdditionalReward   int64           `json:"additional_reward"`
	AdditionalDuration int64           `json:"additional_duration"`
}

var _ lpstake.Msg = (*ExtendMsg)(nil)

func (ExtendMsg) Path() string {
	return "pool/extend"
}

func (m *ExtendMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(m)
}

func (m *ExtendMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, m)
}

func (m *ExtendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", m.Admin.Validate())
	if m.AdditionalReward < 0 {
		errs = errors.AppendField(errs, "AdditionalReward", errors.ErrInvalidAmount)
	}
	return errs
}

// DepositMsg stakes Amount of the liquidity token.
type DepositMsg struct {
	Participant lpstake.Address `json:"participant"`
	Amount      int64           `json:"amount"`
}

var _ lpstake.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return "pool/deposit"
}

func (m *DepositMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(m)
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, m)
}

func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Participant", m.Participant.Validate())
	errs = errors.AppendField(errs, "Amount", checkPositive(m.Amount))
	return errs
}

// WithdrawMsg returns Amount of the staked liquidity token.
type WithdrawMsg struct {
	Participant lpstake.Address `json:"participant"`
	Amount      int64           `json:"amount"`
}

var _ lpstake.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return "pool/withdraw"
}

func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(m)
}

func (m *WithdrawMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, m)
}

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Participant", m.Participant.Validate())
	errs = errors.AppendField(errs, "Amount", checkPositive(m.Amount))
	return errs
}

// ClaimMsg pays the pending reward to the participant.
type ClaimMsg struct {
	Participant lpstake.Address `json:"participant"`
}

var _ lpstake.Msg = (*ClaimMsg)(nil)

func (ClaimMsg) Path() string {
	return "pool/claim"
}

func (m *ClaimMsg) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(m)
}

func (m *ClaimMsg) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, m)
}

func (m *ClaimMsg) Validate() error {
	return errors.AppendField(nil, "Participant", m.Participant.Validate())
}

// UpdateConfigurationMsg replaces the non zero fields of the pool
// configuration.
type UpdateConfigurationMsg struct {
	Patch *Configuration `json:"patch"`
}

var _ lpstake.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "pool/update_configuration"
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

// Validate checks only the fields that are set.
func (m *UpdateConfigurationMsg) Validate() error {
	if m.Patch == nil {
		return errors.Field("Patch", errors.ErrEmpty, "required")
	}
	var errs error
	if len(m.Patch.Owner) != 0 {
		errs = errors.AppendField(errs, "Patch.Owner", m.Patch.Owner.Validate())
	}
	if m.Patch.TTLBump < 0 {
		errs = errors.AppendField(errs, "Patch.TTLBump", errors.ErrInvalidInput)
	}
	if m.Patch.TTLThreshold < 0 {
		errs = errors.AppendField(errs, "Patch.TTLThreshold", errors.ErrInvalidInput)
	}
	return errs
}

func checkPositive(amount int64) error {
	if amount <= 0 {
		return errors.Wrapf(errors.ErrInvalidAmount, "%d is not positive", amount)
	}
	return nil
}
