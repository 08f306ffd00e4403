package sigs

import (
	"context"
	"testing"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/crypto"
	"github.com/lpstake/lpstake/lpstaketest"
	"github.com/lpstake/lpstake/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(SigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := lpstake.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	perms := []lpstake.Condition{priv.PublicKey().Condition()}

	bz := []byte("art")
	tx := NewStdTx(bz)
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec lpstake.Decorator, my lpstake.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec lpstake.Decorator, my lpstake.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	for i, fn := range []func(lpstake.Decorator, lpstake.Tx) error{check, deliver} {
		// test with no sigs
		tx.Signatures = nil
		err := fn(d, tx)
		assert.Error(t, err, "%d", i)

		// test with one
		tx.Signatures = []*StdSignature{sig}
		err = fn(d, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)

		// test with replay
		err = fn(d, tx)
		assert.Error(t, err, "%d", i)

		// test allowing none
		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, []lpstake.Condition{}, signers.Signers)

		// test allowing, with next sequence
		tx.Signatures = []*StdSignature{sig1}
		err = fn(ad, tx)
		assert.NoError(t, err, "%d", i)
		assert.Equal(t, perms, signers.Signers)
	}

	// unsigned transaction types are passed through
	signers.Signers = nil
	_, err = d.Deliver(ctx, kv, &lpstaketest.Tx{}, signers)
	assert.NoError(t, err)
	assert.Empty(t, signers.Signers)
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []lpstake.Condition
}

var _ lpstake.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &lpstake.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &lpstake.DeliverResult{}, nil
}
