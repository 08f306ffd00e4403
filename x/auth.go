package x

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
)

// Authenticator tells handlers which conditions signed the current
// transaction. Handlers take it as a constructor argument so tests can
// replace the signature check.
type Authenticator interface {
	GetConditions(lpstake.Context) []lpstake.Condition
	HasAddress(lpstake.Context, lpstake.Address) bool
}

// Authenticators accepts a signature found by any of its members.
type Authenticators []Authenticator

var _ Authenticator = Authenticators(nil)

// ChainAuth combines several authenticators into one.
func ChainAuth(impls ...Authenticator) Authenticators {
	return Authenticators(impls)
}

// GetConditions returns the conditions of every member, in order.
func (as Authenticators) GetConditions(ctx lpstake.Context) []lpstake.Condition {
	var all []lpstake.Condition
	for _, a := range as {
		all = append(all, a.GetConditions(ctx)...)
	}
	return all
}

func (as Authenticators) HasAddress(ctx lpstake.Context, addr lpstake.Address) bool {
	for _, a := range as {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition that signed, or nil.
func MainSigner(ctx lpstake.Context, auth Authenticator) lpstake.Condition {
	if conds := auth.GetConditions(ctx); len(conds) > 0 {
		return conds[0]
	}
	return nil
}

// RequireAddress fails with ErrUnauthorized unless addr signed the current
// transaction. who names the role in the error message.
func RequireAddress(ctx lpstake.Context, auth Authenticator, addr lpstake.Address, who string) error {
	if len(addr) == 0 {
		return errors.Wrapf(errors.ErrUnauthorized, "no %s address", who)
	}
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s %s did not sign", who, addr)
	}
	return nil
}
