package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	poold "github.com/lpstake/lpstake/cmd/poold/app"
	"github.com/lpstake/lpstake/cmd/poold/config"
	"github.com/lpstake/lpstake/errors"
	"github.com/spf13/cobra"
)

func openNode(cmd *cobra.Command) (*poold.Node, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, cfg, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath()), 0700); err != nil {
		return nil, cfg, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	n, err := poold.OpenNode(cfg.DBPath(), logger.With("module", "poold"), cfg.Debug)
	if err != nil {
		return nil, cfg, err
	}
	return n, cfg, nil
}

// printJSON writes the indented JSON form of v to the command output.
func printJSON(cmd *cobra.Command, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return err
}

// reportErr prints the result code and log of a failed call.
func reportErr(cmd *cobra.Command, err error, debug bool) error {
	code, log := errors.Info(err, debug)
	fmt.Fprintf(cmd.ErrOrStderr(), "code %d: %s\n", code, log)
	return err
}
