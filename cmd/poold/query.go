package main

import (
	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/x/cash"
	"github.com/lpstake/lpstake/x/pool"
	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Read the committed state",
	}

	poolCmd := &cobra.Command{
		Use:   "pool",
		Short: "Print the pool state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, cfg, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()
			p, err := pool.NewLedger(n.QueryStore()).Load()
			if err != nil {
				return reportErr(cmd, err, cfg.Debug)
			}
			return printJSON(cmd, p)
		},
	}

	participantCmd := &cobra.Command{
		Use:   "participant [address]",
		Short: "Print the participant record, of the configured key by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, cfg, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()
			addr, err := queriedAddress(cmd, args)
			if err != nil {
				return err
			}
			part, err := pool.NewLedger(n.QueryStore()).Participant(addr)
			if err != nil {
				return reportErr(cmd, err, cfg.Debug)
			}
			return printJSON(cmd, part)
		},
	}

	pendingCmd := &cobra.Command{
		Use:   "pending [address]",
		Short: "Print the reward a claim at --time would pay",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, cfg, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()
			addr, err := queriedAddress(cmd, args)
			if err != nil {
				return err
			}
			now := lpstake.AsUnixTime(blockTime(cmd))
			amount, err := pool.Pending(pool.NewLedger(n.QueryStore()), now, addr)
			if err != nil {
				return reportErr(cmd, err, cfg.Debug)
			}
			return printJSON(cmd, map[string]interface{}{
				"address": addr,
				"time":    now,
				"pending": amount,
			})
		},
	}
	pendingCmd.Flags().Int64("time", 0, "unix seconds, current time if zero")

	balanceCmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Print the wallet content, of the configured key by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, cfg, err := openNode(cmd)
			if err != nil {
				return err
			}
			defer n.Close()
			addr, err := queriedAddress(cmd, args)
			if err != nil {
				return err
			}
			coins, err := cash.NewController(cash.NewBucket()).Balance(n.QueryStore(), addr)
			if err != nil {
				return reportErr(cmd, err, cfg.Debug)
			}
			return printJSON(cmd, map[string]interface{}{
				"address": addr,
				"coins":   coins,
			})
		},
	}

	cmd.AddCommand(poolCmd, participantCmd, pendingCmd, balanceCmd)
	return cmd
}

// queriedAddress returns the address given as argument, or the address of
// the configured key.
func queriedAddress(cmd *cobra.Command, args []string) (lpstake.Address, error) {
	if len(args) == 1 {
		return lpstake.ParseAddress(args[0])
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	key, err := loadKey(cfg.KeyPath(cfg.Key))
	if err != nil {
		return nil, err
	}
	return key.PublicKey().Address(), nil
}
