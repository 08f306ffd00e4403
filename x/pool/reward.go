package pool

import (
	"math/big"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
)

// reconcile brings the pool to the given time. Once the emission window has
// ended the reward rate drops to zero. Time never moves backwards.
func reconcile(p *Pool, now lpstake.UnixTime) error {
	if now < p.LastUpdateTime {
		return errors.Wrapf(errors.ErrInvalidState, "time %d before last update %d", now, p.LastUpdateTime)
	}
	if now > p.EmissionEndTime {
		p.RewardRate = 0
	}
	p.LastUpdateTime = now
	return nil
}

// share returns deposit * rate / total truncated toward zero. An empty pool
// has no share.
func share(deposit, rate, total int64) (int64, error) {
	if total == 0 {
		return 0, nil
	}
	var n big.Int
	n.Mul(big.NewInt(deposit), big.NewInt(rate))
	n.Quo(&n, big.NewInt(total))
	if !n.IsInt64() {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d / %d", deposit, rate, total)
	}
	return n.Int64(), nil
}

// pending returns the reward that the participant can claim.
func pending(p *Pool, part *Participant) (int64, error) {
	s, err := share(part.Deposit, p.RewardRate, p.TotalDeposit)
	if err != nil {
		return 0, err
	}
	return safeSub(s, part.RewardDebt)
}

func safeAdd(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return sum, nil
}

func safeSub(a, b int64) (int64, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d - %d", a, b)
	}
	return diff, nil
}
