package main

import (
	"github.com/lpstake/lpstake/app"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <genesis.json>",
		Short: "Initialize the chain state from a genesis file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	gen, err := app.LoadGenesis(args[0])
	if err != nil {
		return err
	}
	n, cfg, err := openNode(cmd)
	if err != nil {
		return err
	}
	defer n.Close()
	if err := n.InitChain(gen); err != nil {
		return reportErr(cmd, err, cfg.Debug)
	}
	return printJSON(cmd, map[string]string{"chain_id": n.ChainID()})
}
