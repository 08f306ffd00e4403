package pool

import (
	"testing"

	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/lpstaketest"
	"github.com/lpstake/lpstake/lpstaketest/assert"
	"github.com/lpstake/lpstake/store"
)

func TestPoolValidate(t *testing.T) {
	admin := lpstaketest.RandomAddr(t)

	cases := map[string]struct {
		pool     Pool
		wantErrs map[string]*errors.Error
	}{
		"valid": {
			pool: Pool{Admin: admin, LiquidityTicker: "LPT", RewardTicker: "RWD", RewardRate: 3, TotalDeposit: 10},
			wantErrs: map[string]*errors.Error{
				"Admin":        nil,
				"RewardTicker": nil,
				"RewardRate":   nil,
			},
		},
		"negative values": {
			pool: Pool{Admin: admin, LiquidityTicker: "LPT", RewardTicker: "RWD", RewardRate: -1, TotalDeposit: -1, TotalRewardsFunded: -1, LastUpdateTime: -1},
			wantErrs: map[string]*errors.Error{
				"RewardRate":         errors.ErrInvalidState,
				"TotalDeposit":       errors.ErrInvalidState,
				"TotalRewardsFunded": errors.ErrInvalidState,
				"LastUpdateTime":     errors.ErrInvalidState,
				"EmissionEndTime":    nil,
			},
		},
		"same tickers": {
			pool: Pool{Admin: admin, LiquidityTicker: "LPT", RewardTicker: "LPT"},
			wantErrs: map[string]*errors.Error{
				"LiquidityTicker": nil,
				"RewardTicker":    errors.ErrInvalidInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.pool.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestParticipantValidate(t *testing.T) {
	assert.Nil(t, (&Participant{Address: lpstaketest.RandomAddr(t)}).Validate())

	err := (&Participant{Deposit: -1, RewardDebt: -5}).Validate()
	assert.FieldError(t, err, "Address", errors.ErrInvalidInput)
	assert.FieldError(t, err, "Deposit", errors.ErrInvalidState)
	assert.FieldError(t, err, "RewardDebt", nil)
}

func TestLedgerParticipants(t *testing.T) {
	db := store.MemStore()
	l := NewLedger(db)

	_, err := l.Participant(lpstaketest.RandomAddr(t))
	assert.IsErr(t, errors.ErrNotFound, err)

	all, err := l.Participants()
	assert.Nil(t, err)
	assert.Equal(t, 0, len(all))

	for i := int64(1); i <= 3; i++ {
		assert.Nil(t, l.SaveParticipant(&Participant{Address: lpstaketest.RandomAddr(t), Deposit: i}))
	}
	all, err = l.Participants()
	assert.Nil(t, err)
	assert.Equal(t, 3, len(all))

	err = l.SaveParticipant(&Participant{Deposit: 1})
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestCheckInvariants(t *testing.T) {
	db := store.MemStore()
	l := NewLedger(db)
	assert.IsErr(t, ErrUninitialized, l.CheckInvariants())

	p := &Pool{Admin: lpstaketest.RandomAddr(t), LiquidityTicker: "LPT", RewardTicker: "RWD", TotalDeposit: 30}
	assert.Nil(t, l.Save(p))
	assert.Nil(t, l.SaveParticipant(&Participant{Address: lpstaketest.RandomAddr(t), Deposit: 10}))
	assert.IsErr(t, errors.ErrInvalidState, l.CheckInvariants())

	assert.Nil(t, l.SaveParticipant(&Participant{Address: lpstaketest.RandomAddr(t), Deposit: 20}))
	assert.Nil(t, l.CheckInvariants())
}
