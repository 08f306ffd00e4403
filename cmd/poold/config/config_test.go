package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/lpstaketest/assert"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("home", "", "")
	flags.String("log-level", "", "")
	flags.Bool("debug", false, "")
	flags.String("key", "", "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	home, err := ioutil.TempDir("", "poold")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--home", home}))

	cfg, err := Load("", flags)
	assert.Nil(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, false, cfg.Debug)
	assert.Equal(t, "default", cfg.Key)
	assert.Equal(t, filepath.Join(home, "data", "poold.db"), cfg.DBPath())
	assert.Equal(t, filepath.Join(home, "keys", "alice.key"), cfg.KeyPath("alice"))
}

func TestLoadPrecedence(t *testing.T) {
	home, err := ioutil.TempDir("", "poold")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	cfgFile := filepath.Join(home, "custom.yaml")
	content := "log-level: error\ndebug: true\nkey: from-file\n"
	require.NoError(t, ioutil.WriteFile(cfgFile, []byte(content), 0600))

	os.Setenv("POOLD_KEY", "from-env")
	defer os.Unsetenv("POOLD_KEY")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--home", home, "--log-level", "debug"}))

	cfg, err := Load(cfgFile, flags)
	assert.Nil(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, true, cfg.Debug)
	assert.Equal(t, "from-env", cfg.Key)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml", newFlags())
	assert.IsErr(t, errors.ErrInvalidInput, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		cfg       Config
		wantField string
		wantErr   *errors.Error
	}{
		"valid": {
			cfg: Config{Home: "/tmp", LogLevel: "debug", Key: "alice"},
		},
		"missing home": {
			cfg:       Config{LogLevel: "info", Key: "alice"},
			wantField: "Home",
			wantErr:   errors.ErrEmpty,
		},
		"unknown level": {
			cfg:       Config{Home: "/tmp", LogLevel: "trace", Key: "alice"},
			wantField: "LogLevel",
			wantErr:   errors.ErrInvalidInput,
		},
		"key with path": {
			cfg:       Config{Home: "/tmp", LogLevel: "info", Key: "../alice"},
			wantField: "Key",
			wantErr:   errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.wantField, tc.wantErr)
		})
	}
}
