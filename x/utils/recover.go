package utils

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ lpstake.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx, next lpstake.Checker) (_ *lpstake.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx, next lpstake.Deliverer) (_ *lpstake.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
