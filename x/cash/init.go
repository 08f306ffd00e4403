package cash

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use lpstake.Address, so address in hex, not base64
type GenesisAccount struct {
	Address lpstake.Address `json:"address"`
	Coins   []coin.Coin     `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ lpstake.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts lpstake.Options, kv lpstake.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	control := NewController(NewBucket())
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		for _, c := range acct.Coins {
			if !c.IsPositive() {
				return errors.Wrapf(errors.ErrInvalidAmount, "account %d: %s", i, c)
			}
			if err := control.IssueCoins(kv, acct.Address, c); err != nil {
				return errors.Wrapf(err, "account %d", i)
			}
		}
	}
	return nil
}
