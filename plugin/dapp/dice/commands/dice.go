// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands dice 命令行
package commands

import (
	"fmt"

	"github.com/33cn/dice/common"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
	"github.com/spf13/cobra"
)

// DiceCmd dice 命令
func DiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dice",
		Short: "Commit-reveal dice game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.PersistentFlags().String("conf", "", "config file, default config is used when empty")
	cmd.PersistentFlags().String("datadir", ".", "data directory used with the default config, leveldb is kept under datadir/datadir")

	cmd.AddCommand(
		DigestCmd(),
		CommitCmd(),
		RevealCmd(),
		SweepCmd(),
		WithdrawCmd(),
		PoolCmd(),
		CommitmentCmd(),
		AccountCmd(),
		FaucetCmd(),
		SimulateCmd(),
	)
	return cmd
}

// DigestCmd 计算押注摘要, 不需要访问账本
func DigestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Compute the commit digest of secret and guess",
		Run:   digest,
	}
	cmd.Flags().StringP("secret", "s", "", "secret, 0x prefixed hex or plain text")
	cmd.MarkFlagRequired("secret")
	cmd.Flags().Int32P("guess", "g", 0, "guess")
	cmd.Flags().Int32P("len", "l", dty.DefaultDigestPrefixLength, "digest prefix length")
	return cmd
}

func digest(cmd *cobra.Command, args []string) {
	secretStr, _ := cmd.Flags().GetString("secret")
	guess, _ := cmd.Flags().GetInt32("guess")
	prefixLen, _ := cmd.Flags().GetInt32("len")
	if prefixLen <= 0 || prefixLen > common.Keccak256Len {
		fmt.Fprintln(cmd.ErrOrStderr(), dty.ErrBadGameConfig)
		return
	}
	secret, err := parseSecret(secretStr)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), common.ToHex(dty.CommitDigest(secret, guess, prefixLen)))
}

func addTxFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "caller address")
	cmd.MarkFlagRequired("from")
	cmd.Flags().Int64P("time", "t", 0, "block time in unix seconds, now when 0")
}

// CommitCmd 押注
func CommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Stake on a hidden guess",
		Run:   commit,
	}
	addTxFlags(cmd)
	cmd.Flags().StringP("digest", "d", "", "commit digest, hex")
	cmd.MarkFlagRequired("digest")
	cmd.Flags().StringP("amount", "a", types.FormatAmount(dty.DefaultRequiredStake), "stake amount")
	return cmd
}

func commit(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	digestStr, _ := cmd.Flags().GetString("digest")
	amountStr, _ := cmd.Flags().GetString("amount")
	d, err := common.FromHex(digestStr)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	amount, err := types.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	runTx(cmd, dty.CreateRawDiceCommitTx(from, d, amount))
}

// RevealCmd 揭晓
func RevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal secret and guess, settle the stake",
		Run:   reveal,
	}
	addTxFlags(cmd)
	cmd.Flags().StringP("secret", "s", "", "secret, 0x prefixed hex or plain text")
	cmd.MarkFlagRequired("secret")
	cmd.Flags().Int32P("guess", "g", 0, "guess")
	return cmd
}

func reveal(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	secretStr, _ := cmd.Flags().GetString("secret")
	guess, _ := cmd.Flags().GetInt32("guess")
	secret, err := parseSecret(secretStr)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	runTx(cmd, dty.CreateRawDiceRevealTx(from, secret, guess))
}

// SweepCmd 没收超时的押注
func SweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Forfeit an expired commitment into the prize pool",
		Run:   sweep,
	}
	addTxFlags(cmd)
	cmd.Flags().StringP("committer", "c", "", "address of the expired commitment")
	cmd.MarkFlagRequired("committer")
	return cmd
}

func sweep(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	committer, _ := cmd.Flags().GetString("committer")
	runTx(cmd, dty.CreateRawDiceSweepTx(from, committer))
}

// WithdrawCmd 取回资金
func WithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw available balance from the dice account",
		Run:   withdraw,
	}
	addTxFlags(cmd)
	cmd.Flags().StringP("amount", "a", "", "amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func withdraw(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := types.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	runTx(cmd, dty.CreateRawDiceWithdrawTx(from, amount))
}

// PoolCmd 查询奖池
func PoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool",
		Short: "Show the prize pool",
		Run:   pool,
	}
}

func pool(cmd *cobra.Command, args []string) {
	msg, err := query(cmd, dty.FuncNameGetPrizePool, &types.ReqNil{})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	printJSON(cmd.OutOrStdout(), map[string]string{
		"prizePool": types.FormatAmount(msg.(*dty.PrizePool).GetAmount()),
		"address":   dty.PrizePoolAddress(),
	})
}

// CommitmentCmd 查询押注
func CommitmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commitment",
		Short: "Show the live commitment of an address",
		Run:   commitment,
	}
	cmd.Flags().StringP("addr", "a", "", "committer address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func commitment(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	msg, err := query(cmd, dty.FuncNameGetCommitment, &dty.ReqCommitment{Committer: addr})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	c := msg.(*dty.Commitment)
	printJSON(cmd.OutOrStdout(), map[string]interface{}{
		"committer":   c.GetCommitter(),
		"digest":      common.ToHex(c.GetDigest()),
		"stake":       types.FormatAmount(c.GetStake()),
		"committedAt": c.GetCommittedAt(),
	})
}

// AccountCmd 查询 coins 账户以及 dice 合约账户
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show coins and dice balances of an address",
		Run:   accountInfo,
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func accountInfo(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	exec, err := openExecutor(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	defer exec.Close()
	coins := exec.GetBalance(addr)
	msg, err := exec.Query(dty.DiceX, dty.FuncNameGetAccount, &dty.ReqCommitment{Committer: addr})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	dice := msg.(*types.Account)
	printJSON(cmd.OutOrStdout(), map[string]string{
		"addr":       addr,
		"coins":      types.FormatAmount(coins.GetBalance()),
		"dice":       types.FormatAmount(dice.GetBalance()),
		"diceFrozen": types.FormatAmount(dice.GetFrozen()),
	})
}

// FaucetCmd 本地账本增发
func FaucetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faucet",
		Short: "Mint coins to an address on the local ledger",
		Run:   faucet,
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("amount", "m", "1", "amount")
	return cmd
}

func faucet(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := types.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	exec, err := openExecutor(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	defer exec.Close()
	if _, err := exec.Faucet(addr, amount); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	printJSON(cmd.OutOrStdout(), map[string]string{
		"addr":  addr,
		"coins": types.FormatAmount(exec.GetBalance(addr).GetBalance()),
	})
}

func query(cmd *cobra.Command, funcname string, param types.Message) (types.Message, error) {
	exec, err := openExecutor(cmd)
	if err != nil {
		return nil, err
	}
	defer exec.Close()
	return exec.Query(dty.DiceX, funcname, param)
}
