package pool

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/gconf"
)

// Initializer stores the pool configuration from the genesis file.
type Initializer struct{}

var _ lpstake.Initializer = Initializer{}

// FromGenesis reads the "conf.pool" genesis section. Without it the default
// lifetime settings are used and the pool admin can create the
// configuration later.
func (Initializer) FromGenesis(opts lpstake.Options, db lpstake.KVStore) error {
	var conf Configuration
	err := gconf.InitConfig(db, opts, packageName, &conf)
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
