package utils

import (
	"github.com/lpstake/lpstake"
)

// ActionTagger inspects the message being executed and attaches its path to
// the context logger under the `action` key, so that every log entry
// written while processing the message can be searched by it.
//
// It should be placed before the Logging decorator in the ChainDecorators
// call.
type ActionTagger struct{}

var _ lpstake.Decorator = ActionTagger{}

// ActionKey is the logger key used by ActionTagger.
const ActionKey = "action"

// NewActionTagger creates a ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check tags the context and passes the request along
func (ActionTagger) Check(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx, next lpstake.Checker) (*lpstake.CheckResult, error) {
	ctx = lpstake.WithLogInfo(ctx, ActionKey, lpstake.GetPath(tx))
	return next.Check(ctx, db, tx)
}

// Deliver tags the context and passes the request along
func (ActionTagger) Deliver(ctx lpstake.Context, db lpstake.KVStore, tx lpstake.Tx, next lpstake.Deliverer) (*lpstake.DeliverResult, error) {
	ctx = lpstake.WithLogInfo(ctx, ActionKey, lpstake.GetPath(tx))
	return next.Deliver(ctx, db, tx)
}
