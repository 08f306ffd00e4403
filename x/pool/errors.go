package pool

import "github.com/lpstake/lpstake/errors"

var (
	// ErrUninitialized is returned by every operation called before the
	// pool was initialized.
	ErrUninitialized = errors.Register(30, "pool not initialized")

	// ErrInvalidDuration is returned when a reward window duration is not
	// accepted.
	ErrInvalidDuration = errors.Register(31, "invalid duration")

	// ErrDivisionByZero is returned when the remaining emission window is
	// not positive and no reward rate can be computed.
	ErrDivisionByZero = errors.Register(32, "division by zero")
)
