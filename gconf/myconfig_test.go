package gconf

import (
	"encoding/json"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
)

// myconfig is the configuration fixture used by gconf_test.go.
type myconfig struct {
	Owner lpstake.Address
	Num   int64
	Str   string
	Cn    coin.Coin
}

func (c *myconfig) GetOwner() lpstake.Address  { return c.Owner }
func (c *myconfig) Marshal() ([]byte, error)   { return json.Marshal(c) }
func (c *myconfig) Unmarshal(raw []byte) error { return json.Unmarshal(raw, c) }

func (c *myconfig) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if err := c.Cn.Validate(); err != nil {
		return errors.Wrap(err, "coin")
	}
	return nil
}
