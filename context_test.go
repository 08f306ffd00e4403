package lpstake

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/lpstake/lpstake/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	// try logger with default
	newLogger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, newLogger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, newLogger, GetLogger(ctx))

	// test height - uninitialized
	val, ok := GetHeight(ctx)
	assert.Equal(t, int64(0), val)
	assert.False(t, ok)
	// set
	ctx = WithHeight(ctx, 7)
	val, ok = GetHeight(ctx)
	assert.Equal(t, int64(7), val)
	assert.True(t, ok)
	// no reset
	assert.Panics(t, func() { WithHeight(ctx, 9) })

	// changing the info, should modify the logger, but not the height
	ctx2 := WithLogInfo(ctx, "foo", "bar")
	assert.NotEqual(t, GetLogger(ctx), GetLogger(ctx2))
	val, _ = GetHeight(ctx)
	assert.Equal(t, int64(7), val)

	// chain id MUST be set exactly once
	assert.Panics(t, func() { GetChainID(ctx) })
	ctx2 = WithChainID(ctx, "my-chain")
	assert.Equal(t, "my-chain", GetChainID(ctx2))
	// don't try a second time
	assert.Panics(t, func() { WithChainID(ctx2, "my-chain") })
}

func TestBlockTime(t *testing.T) {
	bg := context.Background()

	_, err := BlockTime(bg)
	assert.True(t, errors.ErrHuman.Is(err))

	_, err = BlockTime(WithHeader(bg, abci.Header{Height: 3}))
	assert.True(t, errors.ErrHuman.Is(err))

	now := time.Date(2019, 5, 1, 10, 0, 0, 0, time.UTC)
	ctx := WithHeader(bg, abci.Header{Height: 3, Time: now})
	got, err := BlockTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, got)
	assert.Panics(t, func() { WithHeader(ctx, abci.Header{}) })

	height, err := BlockHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), height)

	height, err = BlockHeight(WithHeight(ctx, 11))
	require.NoError(t, err)
	assert.Equal(t, int64(11), height)

	_, err = BlockHeight(bg)
	assert.Error(t, err)

	assert.True(t, IsExpired(ctx, AsUnixTime(now)))
	assert.True(t, IsExpired(ctx, AsUnixTime(now).Add(-time.Second)))
	assert.False(t, IsExpired(ctx, AsUnixTime(now).Add(time.Second)))
}

func TestChainID(t *testing.T) {
	cases := []struct {
		chainID string
		valid   bool
	}{
		{"", false},
		{"foo", false},
		{"special", true},
		{"wish-YOU-88", true},
		{"invalid;;chars", false},
		{"this-chain-id-is-way-too-long", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValidChainID(tc.chainID), tc.chainID)
	}
}
