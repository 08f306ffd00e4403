package sigs

import "github.com/lpstake/lpstake/errors"

// ErrInvalidSequence is returned when a signature carries a sequence value
// that does not match the one expected for the signer.
var ErrInvalidSequence = errors.Register(20, "invalid sequence number")
