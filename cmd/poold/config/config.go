/*
Package config loads the poold node settings. Values come from command line
flags, POOLD_* environment variables and an optional config file, in this
order of precedence.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lpstake/lpstake/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix       = "POOLD"
	defaultLogLevel = "info"
	defaultKeyName  = "default"
)

// Config holds the node settings.
type Config struct {
	Home     string
	LogLevel string
	Debug    bool
	Key      string
}

// DefaultHome returns the node directory used when none is configured.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".poold"
	}
	return filepath.Join(home, ".poold")
}

// Load merges the config file, environment variables and flags into Config.
// A missing config file is not an error unless cfgFile names it explicitly.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("home", DefaultHome())
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("key", defaultKeyName)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, errors.Wrapf(errors.ErrInvalidInput, "bind flags: %s", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(errors.ErrInvalidInput, "read config: %s", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(v.GetString("home"))
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, errors.Wrapf(errors.ErrInvalidInput, "read config: %s", err)
			}
		}
	}

	cfg := Config{
		Home:     v.GetString("home"),
		LogLevel: v.GetString("log-level"),
		Debug:    v.GetBool("debug"),
		Key:      v.GetString("key"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all settings are usable.
func (c Config) Validate() error {
	var errs error
	if c.Home == "" {
		errs = errors.AppendField(errs, "Home", errors.ErrEmpty)
	}
	switch c.LogLevel {
	case "debug", "info", "error", "none":
	default:
		errs = errors.AppendField(errs, "LogLevel",
			errors.Wrapf(errors.ErrInvalidInput, "unknown level %q", c.LogLevel))
	}
	if c.Key == "" || strings.ContainsAny(c.Key, `/\`) {
		errs = errors.AppendField(errs, "Key",
			errors.Wrapf(errors.ErrInvalidInput, "invalid key name %q", c.Key))
	}
	return errs
}

// DBPath is the location of the application database.
func (c Config) DBPath() string {
	return filepath.Join(c.Home, "data", "poold.db")
}

// KeyPath is the location of the named private key file.
func (c Config) KeyPath(name string) string {
	return filepath.Join(c.Home, "keys", name+".key")
}
