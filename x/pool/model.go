package pool

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/orm"
)

// Pool is the global state of the staking pool. There is only one instance.
type Pool struct {
	// Admin is the only address allowed to fund and extend the rewards.
	Admin lpstake.Address `json:"admin"`
	// LiquidityTicker is the ticker of the token that participants deposit.
	LiquidityTicker string `json:"liquidity_ticker"`
	// RewardTicker is the ticker of the token that the pool pays out.
	RewardTicker string `json:"reward_ticker"`
	// RewardRate is the value used to compute the share of every
	// participant. It is zeroed once the emission window ends.
	RewardRate int64 `json:"reward_rate"`
	// TotalDeposit is the sum of all participant deposits.
	TotalDeposit int64 `json:"total_deposit"`
	// TotalRewardsFunded is the cumulative reward pledged by the admin.
	TotalRewardsFunded int64 `json:"total_rewards_funded"`
	// EmissionEndTime is the last moment rewards accrue.
	EmissionEndTime lpstake.UnixTime `json:"emission_end_time"`
	// LastUpdateTime is the time of the last reconciliation.
	LastUpdateTime lpstake.UnixTime `json:"last_update_time"`
}

var _ orm.Model = (*Pool)(nil)

func (p *Pool) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(p)
}

func (p *Pool) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, p)
}

func (p *Pool) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", p.Admin.Validate())
	errs = errors.AppendField(errs, "LiquidityTicker", validTicker(p.LiquidityTicker))
	errs = errors.AppendField(errs, "RewardTicker", validTicker(p.RewardTicker))
	if p.LiquidityTicker == p.RewardTicker {
		errs = errors.AppendField(errs, "RewardTicker",
			errors.Wrap(errors.ErrInvalidInput, "must differ from the liquidity ticker"))
	}
	if p.RewardRate < 0 {
		errs = errors.AppendField(errs, "RewardRate", errors.ErrInvalidState)
	}
	if p.TotalDeposit < 0 {
		errs = errors.AppendField(errs, "TotalDeposit", errors.ErrInvalidState)
	}
	if p.TotalRewardsFunded < 0 {
		errs = errors.AppendField(errs, "TotalRewardsFunded", errors.ErrInvalidState)
	}
	errs = errors.AppendField(errs, "EmissionEndTime", p.EmissionEndTime.Validate())
	errs = errors.AppendField(errs, "LastUpdateTime", p.LastUpdateTime.Validate())
	return errs
}

func validTicker(t string) error {
	if !coin.IsTicker(t) {
		return errors.Wrapf(errors.ErrInvalidInput, "invalid ticker %q", t)
	}
	return nil
}

// Participant is the ledger record of a single depositor. A record is never
// deleted, even when the deposit drops to zero.
type Participant struct {
	Address lpstake.Address `json:"address"`
	// Deposit is the amount of the liquidity token staked.
	Deposit int64 `json:"deposit"`
	// RewardDebt is the reward already attributed to the current
	// deposit.
	RewardDebt int64 `json:"reward_debt"`
}

var _ orm.Model = (*Participant)(nil)

func (p *Participant) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(p)
}

func (p *Participant) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, p)
}

func (p *Participant) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Address", p.Address.Validate())
	if p.Deposit < 0 {
		errs = errors.AppendField(errs, "Deposit", errors.Wrap(errors.ErrInvalidState, "negative"))
	}
	return errs
}

const (
	poolBucketName        = "pool"
	participantBucketName = "poolpart"
)

var poolKey = []byte("state")

// NewPoolBucket returns the bucket holding the pool singleton.
func NewPoolBucket() orm.ModelBucket {
	return orm.NewModelBucket(poolBucketName, &Pool{})
}

// NewParticipantBucket returns the bucket of participant records, keyed
// by the participant address.
func NewParticipantBucket() orm.ModelBucket {
	return orm.NewModelBucket(participantBucketName, &Participant{})
}
