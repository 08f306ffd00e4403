package pool

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
)

// Controller implements the pool operations. All token movements go through
// the gateway. Operations validate and compute the new state first, move
// tokens and only then persist, so a failed call leaves no state change
// behind other than what the gateway itself wrote.
type Controller struct {
	gateway TokenGateway
}

// NewController returns a controller moving tokens with given gateway.
func NewController(gateway TokenGateway) Controller {
	return Controller{gateway: gateway}
}

// Initialize creates the pool. The signer becomes the pool admin.
func (c Controller) Initialize(l *Ledger, now lpstake.UnixTime, admin Signer, liquidityTicker, rewardTicker string) (*Pool, error) {
	if err := admin.validate(); err != nil {
		return nil, err
	}
	switch exists, err := l.Exists(); {
	case err != nil:
		return nil, err
	case exists:
		return nil, errors.Wrap(errors.ErrDuplicate, "pool already initialized")
	}

	p := &Pool{
		Admin:           admin.Address(),
		LiquidityTicker: liquidityTicker,
		RewardTicker:    rewardTicker,
		LastUpdateTime:  now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := l.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Fund starts a new emission window of duration seconds, pulling
// rewardAmount of the reward token from the admin.
func (c Controller) Fund(l *Ledger, now lpstake.UnixTime, admin Signer, rewardAmount, duration int64) (*Pool, error) {
	if duration <= 0 {
		return nil, errors.Wrapf(ErrInvalidDuration, "duration %d must be positive", duration)
	}
	if rewardAmount < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidAmount, "negative reward %d", rewardAmount)
	}
	p, err := c.loadAsAdmin(l, admin)
	if err != nil {
		return nil, err
	}
	if err := reconcile(p, now); err != nil {
		return nil, err
	}

	total, err := safeAdd(p.TotalRewardsFunded, rewardAmount)
	if err != nil {
		return nil, errors.Wrap(err, "total rewards")
	}
	end, err := safeAdd(int64(now), duration)
	if err != nil {
		return nil, errors.Wrap(err, "emission end time")
	}
	p.RewardRate = rewardAmount / duration
	p.TotalRewardsFunded = total
	p.EmissionEndTime = lpstake.UnixTime(end)

	reward := coin.NewCoin(rewardAmount, p.RewardTicker)
	if err := c.gateway.TransferFrom(l.db, admin.Address(), PoolAccount(), reward); err != nil {
		return nil, err
	}
	if err := l.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Extend adds reward and time to the emission window. The rate is computed
// from the total funded reward over the remaining window. A negative
// duration shortens the window as long as some of it remains.
func (c Controller) Extend(l *Ledger, now lpstake.UnixTime, admin Signer, additionalReward, additionalDuration int64) (*Pool, error) {
	if additionalReward < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidAmount, "negative reward %d", additionalReward)
	}
	p, err := c.loadAsAdmin(l, admin)
	if err != nil {
		return nil, err
	}
	if err := reconcile(p, now); err != nil {
		return nil, err
	}

	total, err := safeAdd(p.TotalRewardsFunded, additionalReward)
	if err != nil {
		return nil, errors.Wrap(err, "total rewards")
	}
	end, err := safeAdd(int64(p.EmissionEndTime), additionalDuration)
	if err != nil {
		return nil, errors.Wrap(err, "emission end time")
	}
	window, err := safeSub(end, int64(now))
	if err != nil {
		return nil, errors.Wrap(err, "remaining window")
	}
	if window <= 0 {
		return nil, errors.Wrapf(ErrDivisionByZero, "emission would end at %d, now is %d", end, now)
	}
	p.RewardRate = total / window
	p.TotalRewardsFunded = total
	p.EmissionEndTime = lpstake.UnixTime(end)

	reward := coin.NewCoin(additionalReward, p.RewardTicker)
	if err := c.gateway.TransferFrom(l.db, admin.Address(), PoolAccount(), reward); err != nil {
		return nil, err
	}
	if err := l.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c Controller) loadAsAdmin(l *Ledger, admin Signer) (*Pool, error) {
	if err := admin.validate(); err != nil {
		return nil, err
	}
	p, err := l.Load()
	if err != nil {
		return nil, err
	}
	if !p.Admin.Equals(admin.Address()) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "pool admin only")
	}
	return p, nil
}

// Deposit stakes amount of the liquidity token. The reward debt of an
// existing participant is computed against the total deposit before this
// deposit is added.
func (c Controller) Deposit(l *Ledger, now lpstake.UnixTime, participant Signer, amount int64) (*Participant, error) {
	if amount <= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidAmount, "deposit %d must be positive", amount)
	}
	if err := participant.validate(); err != nil {
		return nil, err
	}
	p, err := l.Load()
	if err != nil {
		return nil, err
	}
	if err := reconcile(p, now); err != nil {
		return nil, err
	}

	part, err := l.Participant(participant.Address())
	switch {
	case err == nil:
		deposit, err := safeAdd(part.Deposit, amount)
		if err != nil {
			return nil, errors.Wrap(err, "deposit")
		}
		debt, err := share(deposit, p.RewardRate, p.TotalDeposit)
		if err != nil {
			return nil, errors.Wrap(err, "reward debt")
		}
		part.Deposit = deposit
		part.RewardDebt = debt
	case errors.ErrNotFound.Is(err):
		part = &Participant{
			Address:    participant.Address(),
			Deposit:    amount,
			RewardDebt: 0,
		}
	default:
		return nil, err
	}
	if p.TotalDeposit, err = safeAdd(p.TotalDeposit, amount); err != nil {
		return nil, errors.Wrap(err, "total deposit")
	}

	liquidity := coin.NewCoin(amount, p.LiquidityTicker)
	if err := c.gateway.TransferFrom(l.db, participant.Address(), PoolAccount(), liquidity); err != nil {
		return nil, err
	}
	if err := l.SaveParticipant(part); err != nil {
		return nil, err
	}
	if err := l.Save(p); err != nil {
		return nil, err
	}
	return part, nil
}

// Withdraw returns amount of the staked liquidity token to the participant.
// The reward debt is computed against the total deposit before this
// withdrawal is subtracted.
func (c Controller) Withdraw(l *Ledger, now lpstake.UnixTime, participant Signer, amount int64) (*Participant, error) {
	if amount <= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidAmount, "withdraw %d must be positive", amount)
	}
	if err := participant.validate(); err != nil {
		return nil, err
	}
	p, err := l.Load()
	if err != nil {
		return nil, err
	}
	part, err := l.Participant(participant.Address())
	if err != nil {
		return nil, err
	}
	if amount > part.Deposit {
		return nil, errors.Wrapf(errors.ErrInsufficientBalance, "deposit %d, withdraw %d", part.Deposit, amount)
	}
	if err := reconcile(p, now); err != nil {
		return nil, err
	}

	part.Deposit -= amount
	if part.RewardDebt, err = share(part.Deposit, p.RewardRate, p.TotalDeposit); err != nil {
		return nil, errors.Wrap(err, "reward debt")
	}
	p.TotalDeposit -= amount

	liquidity := coin.NewCoin(amount, p.LiquidityTicker)
	if err := c.gateway.Transfer(l.db, participant.Address(), liquidity); err != nil {
		return nil, err
	}
	if err := l.SaveParticipant(part); err != nil {
		return nil, err
	}
	if err := l.Save(p); err != nil {
		return nil, err
	}
	return part, nil
}

// Claim pays the pending reward to the participant and returns the paid
// amount. A second claim without any change in between pays nothing.
func (c Controller) Claim(l *Ledger, now lpstake.UnixTime, participant Signer) (int64, error) {
	if err := participant.validate(); err != nil {
		return 0, err
	}
	p, err := l.Load()
	if err != nil {
		return 0, err
	}
	part, err := l.Participant(participant.Address())
	if err != nil {
		return 0, err
	}
	if err := reconcile(p, now); err != nil {
		return 0, err
	}

	amount, err := pending(p, part)
	if err != nil {
		return 0, errors.Wrap(err, "pending reward")
	}
	if part.RewardDebt, err = share(part.Deposit, p.RewardRate, p.TotalDeposit); err != nil {
		return 0, errors.Wrap(err, "reward debt")
	}
	if amount > 0 {
		reward := coin.NewCoin(amount, p.RewardTicker)
		if err := c.gateway.Transfer(l.db, participant.Address(), reward); err != nil {
			return 0, err
		}
	} else {
		amount = 0
	}
	if err := l.SaveParticipant(part); err != nil {
		return 0, err
	}
	if err := l.Save(p); err != nil {
		return 0, err
	}
	return amount, nil
}

// Pending returns the reward that a claim at given time would pay. Nothing
// is written.
func Pending(l *Ledger, now lpstake.UnixTime, addr lpstake.Address) (int64, error) {
	p, err := l.Load()
	if err != nil {
		return 0, err
	}
	part, err := l.Participant(addr)
	if err != nil {
		return 0, err
	}
	if err := reconcile(p, now); err != nil {
		return 0, err
	}
	amount, err := pending(p, part)
	if err != nil {
		return 0, err
	}
	if amount < 0 {
		return 0, nil
	}
	return amount, nil
}
