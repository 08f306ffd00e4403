package utils

import (
	"context"
	"testing"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/store"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	var h panicHandler
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { _, _ = h.Check(ctx, s, nil) })
	assert.Panics(t, func() { _, _ = h.Deliver(ctx, s, nil) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))
}

type panicHandler struct{}

var _ lpstake.Handler = panicHandler{}

func (p panicHandler) Check(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx) (*lpstake.CheckResult, error) {
	panic("check panic")
}

func (p panicHandler) Deliver(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx) (*lpstake.DeliverResult, error) {
	panic("deliver panic")
}
