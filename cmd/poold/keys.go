package main

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/lpstake/lpstake/crypto"
	"github.com/lpstake/lpstake/errors"
	"github.com/spf13/cobra"
)

const bech32Prefix = "lp"

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage signing keys",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "new",
			Short: "Generate a new key, stored under the --key name",
			Args:  cobra.NoArgs,
			RunE:  runKeysNew,
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the address of the --key key",
			Args:  cobra.NoArgs,
			RunE:  runKeysShow,
		},
	)
	return cmd
}

func runKeysNew(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := cfg.KeyPath(cfg.Key)
	if _, err := os.Stat(path); err == nil {
		return errors.Wrapf(errors.ErrDuplicate, "key %q exists", cfg.Key)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	key := crypto.GenPrivKeyEd25519()
	raw, err := key.Marshal()
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(path, []byte(hex.EncodeToString(raw)), 0600); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return printKey(cmd, cfg.Key, key)
}

func runKeysShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	key, err := loadKey(cfg.KeyPath(cfg.Key))
	if err != nil {
		return err
	}
	return printKey(cmd, cfg.Key, key)
}

func loadKey(path string) (*crypto.PrivateKey, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "key file: %s", err)
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(content)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "key file is not hex encoded")
	}
	var key crypto.PrivateKey
	if err := key.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "key file")
	}
	return &key, nil
}

func printKey(cmd *cobra.Command, name string, key *crypto.PrivateKey) error {
	addr := key.PublicKey().Address()
	b32, err := addr.Bech32(bech32Prefix)
	if err != nil {
		return err
	}
	return printJSON(cmd, map[string]string{
		"name":    name,
		"address": addr.String(),
		"bech32":  b32,
	})
}
