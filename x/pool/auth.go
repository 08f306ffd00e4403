package pool

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/x"
)

// Signer proves that an address authorized the current operation. It can
// only be created by Authorize, the zero value authorizes nobody.
type Signer struct {
	addr lpstake.Address
}

// Authorize returns a Signer for addr if the context carries its
// signature.
func Authorize(ctx lpstake.Context, auth x.Authenticator, addr lpstake.Address) (Signer, error) {
	if err := addr.Validate(); err != nil {
		return Signer{}, errors.Wrap(err, "signer")
	}
	if err := x.RequireAddress(ctx, auth, addr, "signer"); err != nil {
		return Signer{}, err
	}
	return Signer{addr: addr}, nil
}

// Address returns the authorized address.
func (s Signer) Address() lpstake.Address {
	return s.addr
}

func (s Signer) validate() error {
	if len(s.addr) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing signer")
	}
	return nil
}
