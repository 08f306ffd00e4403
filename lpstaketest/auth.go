package lpstaketest

import (
	"context"

	"github.com/lpstake/lpstake"
)

// Auth is an x.Authenticator that reports Signers followed by Signer as
// the conditions of every context.
type Auth struct {
	Signer  lpstake.Condition
	Signers []lpstake.Condition
}

func (a *Auth) GetConditions(lpstake.Context) []lpstake.Condition {
	conds := append([]lpstake.Condition(nil), a.Signers...)
	if a.Signer != nil {
		conds = append(conds, a.Signer)
	}
	return conds
}

func (a *Auth) HasAddress(ctx lpstake.Context, addr lpstake.Address) bool {
	return signedBy(a.GetConditions(ctx), addr)
}

// CtxAuth is an x.Authenticator that reads the conditions stored in the
// context under Key. Two CtxAuth with different keys never see each other's
// conditions.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context carrying conds.
func (a *CtxAuth) SetConditions(ctx lpstake.Context, conds ...lpstake.Condition) lpstake.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx lpstake.Context) []lpstake.Condition {
	conds, _ := ctx.Value(a.Key).([]lpstake.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx lpstake.Context, addr lpstake.Address) bool {
	return signedBy(a.GetConditions(ctx), addr)
}

func signedBy(conds []lpstake.Condition, addr lpstake.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
