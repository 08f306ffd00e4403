package main

import (
	"encoding/hex"
	"time"

	"github.com/lpstake/lpstake"
	poold "github.com/lpstake/lpstake/cmd/poold/app"
	"github.com/lpstake/lpstake/coin"
	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/x/cash"
	"github.com/lpstake/lpstake/x/mint"
	"github.com/lpstake/lpstake/x/pool"
	"github.com/spf13/cobra"
)

// msgBuilder creates the message to submit. The signer is the address of
// the configured key.
type msgBuilder func(cmd *cobra.Command, signer lpstake.Address) (lpstake.Msg, error)

func newTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Sign and apply a transaction in a new block",
	}
	cmd.PersistentFlags().Int64("time", 0, "block time as unix seconds, current time if zero")

	poolCmd := &cobra.Command{
		Use:   "pool",
		Short: "Liquidity staking pool transactions",
	}

	initCmd := txCommand("initialize", "Create the pool, the signer becomes its admin",
		func(cmd *cobra.Command, signer lpstake.Address) (lpstake.Msg, error) {
			liquidity, _ := cmd.Flags().GetString("liquidity")
			reward, _ := cmd.Flags().GetString("reward")
			return &pool.InitializeMsg{Admin: signer, LiquidityTicker: liquidity, RewardTicker: reward}, nil
		})
	initCmd.Flags().String("liquidity", "", "ticker of the staked token")
	initCmd.Flags().String("reward", "", "ticker of the reward token")

	fundCmd := txCommand("fund", "Start a new emission window",
		func(cmd *cobra.Command, signer lpstake.Address) (lpstake.Msg, error) {
			amount, _ := cmd.Flags().GetInt64("amount")
			duration, _ := cmd.Flags().GetInt64("duration")
			return &pool.FundMsg{Admin: signer, RewardAmount: amount, Duration: duration}, nil
		})
	fundCmd.Flags().Int64("amount", 0, "reward amount")
	fundCmd.Flags().Int64("duration", 0, "emission duration in seconds")

	extendCmd := txCommand("extend", "Add reward and time to the emission window",
		func(cmd *cobra.Command, signer lpstake.Address) (lpstake.Msg, error) {
			amount, _ := cmd.Flags().GetInt64("amount")
			duration, _ := cmd.Flags().GetInt64("duration")
			return &pool.ExtendMsg{Admin: signer, AdditionalReward: amount, AdditionalDuration: duration}, nil
		})
	extendCmd.Flags().Int64("amount", 0, "additional reward amount")
	extendCmd.Flags().Int64("duration", 0, "additional duration in seconds")

	depositCmd := txCommand("deposit", "Stake liquidity tokens",
		func(cmd *cobra.Command, signer lpstake.Address) (lpstake.Msg, error) {
			amount, _ := cmd.Flags().GetInt64("amount")
			return &pool.DepositMsg{Participant: signer, Amount: amount}, nil
		})
	depositCmd.Flags().Int64("amount", 0, "amount to stake")

	withdrawCmd := txCommand("withdraw", "Unstake liquidity tokens",
		func(cmd *cobra.Command, signer lpstake.Address) (lpstake.Msg, error) {
			amount, _ := cmd.Flags().GetInt64("amount")
			return &pool.WithdrawMsg{Participant: signer, Amount: amount}, nil
		})
	withdrawCmd.Flags().Int64("amount", 0, "amount to unstake")

	claimCmd := txCommand("claim", "Collect the pending reward",
		func(cmd *cobra.Command, signer lpstake.Address) (lpstake.Msg, error) {
			return &pool.ClaimMsg{Participant: signer}, nil
		})

	poolCmd.AddCommand(initCmd, fundCmd, extendCmd, depositCmd, withdrawCmd, claimCmd)

	cashCmd := &cobra.Command{
		Use:   "cash",
		Short: "Token transfers",
	}
	var sendAmount coin.Coin
	sendCmd := txCommand("send", "Send tokens to another address",
		func(cmd *cobra.Command, signer lpstake.Address) (lpstake.Msg, error) {
			dest, err := addressFlag(cmd, "to")
			if err != nil {
				return nil, err
			}
			memo, _ := cmd.Flags().GetString("memo")
			amount := sendAmount
			return &cash.SendMsg{Source: signer, Destination: dest, Amount: &amount, Memo: memo}, nil
		})
	sendCmd.Flags().String("to", "", "recipient address")
	sendCmd.Flags().Var(&sendAmount, "amount", `amount as "<value> <TICKER>"`)
	sendCmd.Flags().String("memo", "", "optional memo")
	cashCmd.AddCommand(sendCmd)

	var mintAmount coin.Coin
	mintCmd := txCommand("mint", "Issue new tokens, mint owner only",
		func(cmd *cobra.Command, signer lpstake.Address) (lpstake.Msg, error) {
			dest, err := addressFlag(cmd, "to")
			if err != nil {
				return nil, err
			}
			return &mint.MintMsg{Recipient: dest, Amount: mintAmount}, nil
		})
	mintCmd.Flags().String("to", "", "recipient address")
	mintCmd.Flags().Var(&mintAmount, "amount", `amount as "<value> <TICKER>"`)

	cmd.AddCommand(poolCmd, cashCmd, mintCmd)
	return cmd
}

func txCommand(use, short string, build msgBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return submit(cmd, build)
		},
	}
}

func submit(cmd *cobra.Command, build msgBuilder) error {
	n, cfg, err := openNode(cmd)
	if err != nil {
		return err
	}
	defer n.Close()
	key, err := loadKey(cfg.KeyPath(cfg.Key))
	if err != nil {
		return err
	}
	msg, err := build(cmd, key.PublicKey().Address())
	if err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return reportErr(cmd, err, cfg.Debug)
	}

	tx := &poold.Tx{Msg: msg}
	if err := n.Sign(tx, key); err != nil {
		return reportErr(cmd, err, cfg.Debug)
	}
	res, err := n.Apply(tx, blockTime(cmd))
	if err != nil {
		return reportErr(cmd, err, cfg.Debug)
	}
	height, err := n.Height()
	if err != nil {
		return err
	}

	out := map[string]interface{}{
		"path":   msg.Path(),
		"height": height,
	}
	if res.Log != "" {
		out["log"] = res.Log
	}
	if len(res.Data) > 0 {
		out["data"] = hex.EncodeToString(res.Data)
	}
	if _, ok := msg.(*pool.ClaimMsg); ok {
		var paid coin.Coin
		if err := paid.Unmarshal(res.Data); err != nil {
			return errors.Wrap(err, "claim result")
		}
		out["paid"] = paid.String()
	}
	return printJSON(cmd, out)
}

func blockTime(cmd *cobra.Command) time.Time {
	if ts, _ := cmd.Flags().GetInt64("time"); ts != 0 {
		return time.Unix(ts, 0)
	}
	return time.Now()
}

func addressFlag(cmd *cobra.Command, name string) (lpstake.Address, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return nil, errors.Wrapf(errors.ErrEmpty, "--%s is required", name)
	}
	addr, err := lpstake.ParseAddress(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", name)
	}
	return addr, nil
}
