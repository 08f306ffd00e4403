package mint

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/gconf"
)

// Initializer stores the mint configuration from the genesis file.
type Initializer struct{}

var _ lpstake.Initializer = Initializer{}

// FromGenesis reads the "conf.mint" genesis section. A genesis without a mint
// configuration is accepted, minting is then disabled.
func (Initializer) FromGenesis(opts lpstake.Options, db lpstake.KVStore) error {
	var conf Configuration
	err := gconf.InitConfig(db, opts, packageName, &conf)
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
