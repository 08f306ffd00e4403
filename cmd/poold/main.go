package main

import (
	"os"

	"github.com/lpstake/lpstake/cmd/poold/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "poold",
		Short:        "Liquidity staking pool node",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file path")
	flags.String("home", config.DefaultHome(), "node directory")
	flags.String("log-level", "info", "log level (debug, info, error, none)")
	flags.Bool("debug", false, "print full error stacks")
	flags.String("key", "default", "name of the signing key")

	root.AddCommand(
		newKeysCmd(),
		newInitCmd(),
		newTxCmd(),
		newQueryCmd(),
		newVersionCmd(),
	)
	return root
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	return config.Load(cfgFile, cmd.Flags())
}
