package pool

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/gconf"
	"github.com/lpstake/lpstake/ttl"
)

const packageName = "pool"

// Configuration holds the lifetime settings of the pool instance.
type Configuration struct {
	// Owner can update this configuration.
	Owner lpstake.Address `json:"owner"`
	// TTLThreshold is the number of blocks of remaining lifetime below
	// which a write extends the pool lifetime.
	TTLThreshold int64 `json:"ttl_threshold"`
	// TTLBump is the lifetime, in blocks, granted by an extension.
	TTLBump int64 `json:"ttl_bump"`
}

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return lpstake.MarshalBinary(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return lpstake.UnmarshalBinary(raw, c)
}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if c.TTLBump <= 0 {
		errs = errors.AppendField(errs, "TTLBump", errors.Wrap(errors.ErrInvalidInput, "must be positive"))
	}
	if c.TTLThreshold < 0 || c.TTLThreshold > c.TTLBump {
		errs = errors.AppendField(errs, "TTLThreshold", errors.Wrap(errors.ErrInvalidInput, "must be between zero and bump"))
	}
	return errs
}

func (c *Configuration) GetOwner() lpstake.Address {
	return c.Owner
}

// DefaultConfiguration returns the lifetime settings used when no
// configuration was stored.
func DefaultConfiguration() Configuration {
	return Configuration{
		TTLThreshold: ttl.DefaultThreshold,
		TTLBump:      ttl.DefaultBump,
	}
}

// LoadConfiguration returns the stored configuration or the default one.
func LoadConfiguration(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	default:
		return conf, errors.Wrap(err, "load configuration")
	}
}
