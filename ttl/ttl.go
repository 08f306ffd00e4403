/*
Package ttl keeps track of how long a stored instance stays alive.

Every instance key has a live-until block height. Writers call Extend after
a state changing write; the lifetime is moved forward only when it is about
to run out, so frequent writes do not rewrite the record every block.
*/
package ttl

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/orm"
)

const (
	// DayInBlocks is the number of blocks produced during one day, with a
	// block every five seconds.
	DayInBlocks int64 = 17280

	// DefaultBump is the lifetime granted by an extension.
	DefaultBump = 7 * DayInBlocks

	// DefaultThreshold is the remaining lifetime below which an extension
	// takes place.
	DefaultThreshold = DefaultBump - DayInBlocks
)

// Lifetime is the stored live-until height of a single instance key.
type Lifetime struct {
	LiveUntil int64
}

var _ orm.Model = (*Lifetime)(nil)

func (l *Lifetime) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(l)
}

func (l *Lifetime) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, l)
}

func (l *Lifetime) Validate() error {
	if l.LiveUntil <= 0 {
		return errors.Field("LiveUntil", errors.ErrInvalidState, "must be positive")
	}
	return nil
}

var lifetimes = orm.NewModelBucket("ttl", &Lifetime{})

// Extend moves the lifetime of given key to height+bump if fewer than
// threshold blocks of its lifetime remain. A key that was never extended is
// treated as expiring at the current height.
func Extend(db lpstake.KVStore, key []byte, height, threshold, bump int64) error {
	if height < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "negative height")
	}
	if bump <= 0 || threshold < 0 || threshold > bump {
		return errors.Wrapf(errors.ErrInvalidInput, "invalid threshold %d and bump %d", threshold, bump)
	}

	var lt Lifetime
	switch err := lifetimes.One(db, key, &lt); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		lt.LiveUntil = height
	default:
		return errors.Wrap(err, "cannot load lifetime")
	}

	if lt.LiveUntil-height >= threshold {
		return nil
	}
	lt.LiveUntil = height + bump
	if err := lifetimes.Put(db, key, &lt); err != nil {
		return errors.Wrap(err, "cannot save lifetime")
	}
	return nil
}

// LiveUntil returns the last height at which given key is alive. It returns
// ErrNotFound if the key lifetime was never extended.
func LiveUntil(db lpstake.ReadOnlyKVStore, key []byte) (int64, error) {
	var lt Lifetime
	if err := lifetimes.One(db, key, &lt); err != nil {
		return 0, err
	}
	return lt.LiveUntil, nil
}

// IsAlive returns true if the key lifetime reaches given height.
func IsAlive(db lpstake.ReadOnlyKVStore, key []byte, height int64) (bool, error) {
	until, err := LiveUntil(db, key)
	switch {
	case err == nil:
		return height <= until, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}
