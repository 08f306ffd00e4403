package cash

import (
	"math"
	"testing"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/lpstaketest"
	"github.com/lpstake/lpstake/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balance(t *testing.T, c Controller, kv lpstake.ReadOnlyKVStore, addr lpstake.Address, ticker string) int64 {
	t.Helper()
	coins, err := c.Balance(kv, addr)
	require.NoError(t, err)
	return coins.Get(ticker).Amount
}

func TestIssueCoins(t *testing.T) {
	kv := store.MemStore()
	addr := lpstaketest.RandomAddr(t)
	addr2 := lpstaketest.RandomAddr(t)
	controller := NewController(NewBucket())

	assert.Equal(t, int64(0), balance(t, controller, kv, addr, "LPT"))

	// issue positive
	require.NoError(t, controller.IssueCoins(kv, addr, coin.NewCoin(500, "LPT")))
	assert.Equal(t, int64(500), balance(t, controller, kv, addr, "LPT"))
	assert.Equal(t, int64(0), balance(t, controller, kv, addr2, "LPT"))

	// issue negative
	require.NoError(t, controller.IssueCoins(kv, addr, coin.NewCoin(-400, "LPT")))
	assert.Equal(t, int64(100), balance(t, controller, kv, addr, "LPT"))

	// issue to other wallet
	require.NoError(t, controller.IssueCoins(kv, addr2, coin.NewCoin(7, "RWD")))
	assert.Equal(t, int64(0), balance(t, controller, kv, addr, "RWD"))
	assert.Equal(t, int64(7), balance(t, controller, kv, addr2, "RWD"))

	// set to zero removes the wallet
	require.NoError(t, controller.IssueCoins(kv, addr2, coin.NewCoin(-7, "RWD")))
	err := NewBucket().Has(kv, addr2)
	assert.True(t, errors.ErrNotFound.Is(err))

	// overflow is rejected
	err = controller.IssueCoins(kv, addr, coin.NewCoin(math.MaxInt64, "LPT"))
	assert.True(t, errors.ErrOverflow.Is(err))
	assert.Equal(t, int64(100), balance(t, controller, kv, addr, "LPT"))

	// cannot go below zero
	err = controller.IssueCoins(kv, addr, coin.NewCoin(-101, "LPT"))
	assert.True(t, errors.ErrInsufficientBalance.Is(err))
	assert.Equal(t, int64(100), balance(t, controller, kv, addr, "LPT"))

	// invalid ticker
	err = controller.IssueCoins(kv, addr, coin.NewCoin(1, "lpt"))
	assert.True(t, errors.ErrInvalidInput.Is(err))
}

func TestMoveCoins(t *testing.T) {
	kv := store.MemStore()
	src := lpstaketest.RandomAddr(t)
	dest := lpstaketest.RandomAddr(t)
	controller := NewController(NewBucket())

	require.NoError(t, controller.IssueCoins(kv, src, coin.NewCoin(100, "LPT")))

	cases := map[string]struct {
		src     lpstake.Address
		dest    lpstake.Address
		amount  coin.Coin
		wantErr *errors.Error
		wantSrc int64
		wantDst int64
	}{
		"zero amount": {
			src: src, dest: dest, amount: coin.NewCoin(0, "LPT"),
			wantErr: errors.ErrInvalidAmount, wantSrc: 100,
		},
		"negative amount": {
			src: src, dest: dest, amount: coin.NewCoin(-5, "LPT"),
			wantErr: errors.ErrInvalidAmount, wantSrc: 100,
		},
		"unknown ticker": {
			src: src, dest: dest, amount: coin.NewCoin(5, "RWD"),
			wantErr: errors.ErrInsufficientBalance, wantSrc: 100,
		},
		"not enough funds": {
			src: src, dest: dest, amount: coin.NewCoin(101, "LPT"),
			wantErr: errors.ErrInsufficientBalance, wantSrc: 100,
		},
		"missing source wallet": {
			src: dest, dest: src, amount: coin.NewCoin(1, "LPT"),
			wantErr: errors.ErrInsufficientBalance, wantSrc: 100,
		},
		"invalid destination": {
			src: src, dest: lpstake.Address("short"), amount: coin.NewCoin(1, "LPT"),
			wantErr: errors.ErrInvalidInput, wantSrc: 100,
		},
		"move to self": {
			src: src, dest: src, amount: coin.NewCoin(40, "LPT"),
			wantSrc: 100,
		},
		"partial move": {
			src: src, dest: dest, amount: coin.NewCoin(40, "LPT"),
			wantSrc: 60, wantDst: 40,
		},
		"move everything": {
			src: src, dest: dest, amount: coin.NewCoin(100, "LPT"),
			wantSrc: 0, wantDst: 100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := kv.CacheWrap()
			defer db.Discard()

			err := controller.MoveCoins(db, tc.src, tc.dest, tc.amount)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantSrc, balance(t, controller, db, src, "LPT"))
			assert.Equal(t, tc.wantDst, balance(t, controller, db, dest, "LPT"))
		})
	}
}

func TestEmptyWalletIsNotStored(t *testing.T) {
	kv := store.MemStore()
	src := lpstaketest.RandomAddr(t)
	dest := lpstaketest.RandomAddr(t)
	controller := NewController(NewBucket())
	bucket := NewBucket()

	require.NoError(t, controller.IssueCoins(kv, src, coin.NewCoin(5, "LPT")))
	require.NoError(t, controller.MoveCoins(kv, src, dest, coin.NewCoin(5, "LPT")))

	assert.True(t, errors.ErrNotFound.Is(bucket.Has(kv, src)))
	require.NoError(t, bucket.Has(kv, dest))

	err := bucket.Put(kv, src, &Wallet{})
	assert.True(t, errors.ErrEmpty.Is(err))
}
