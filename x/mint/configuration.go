package mint

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/gconf"
)

const packageName = "mint"

// Configuration of the mint extension.
type Configuration struct {
	// Owner is the only address allowed to mint and to update this
	// configuration.
	Owner lpstake.Address `json:"owner"`
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, c)
}

func (c *Configuration) Validate() error {
	return errors.AppendField(nil, "Owner", c.Owner.Validate())
}

func (c *Configuration) GetOwner() lpstake.Address {
	return c.Owner
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
