// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/executor"
	"github.com/33cn/dice/metrics"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
	"github.com/pkg/errors"
	"github.com/qianlnk/pgbar"
	"github.com/spf13/cobra"
)

// SimulateCmd 在内存账本上随机进行若干轮游戏
func SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play random rounds on an in-memory ledger",
		Run:   simulate,
	}
	cmd.Flags().IntP("rounds", "r", 100, "rounds")
	cmd.Flags().IntP("players", "p", 4, "players")
	cmd.Flags().Int64P("seed", "s", 1, "random seed")
	cmd.Flags().IntP("skip", "k", 10, "percent of commitments never revealed")
	cmd.Flags().BoolP("bar", "b", false, "show progress bar")
	return cmd
}

// SimulateResult 模拟结果
type SimulateResult struct {
	Rounds    int    `json:"rounds"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Forfeits  int    `json:"forfeits"`
	PrizePool string `json:"prizePool"`
	PoolFunds string `json:"poolFunds"`
}

func simulate(cmd *cobra.Command, args []string) {
	rounds, _ := cmd.Flags().GetInt("rounds")
	players, _ := cmd.Flags().GetInt("players")
	seed, _ := cmd.Flags().GetInt64("seed")
	skip, _ := cmd.Flags().GetInt("skip")
	showBar, _ := cmd.Flags().GetBool("bar")
	cfg, sub, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	db, err := dbm.NewGoMemDB("simulate", "", 0)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	exec, err := executor.NewWithDB(db, sub)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	defer exec.Close()
	var progress func()
	if showBar {
		pgbar.Println("simulate rounds")
		bar := pgbar.NewBar(0, "rounds", rounds)
		progress = func() { bar.Add(1) }
	}
	result, err := Simulate(exec, rounds, players, skip, rand.New(rand.NewSource(seed)), progress)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	printJSON(cmd.OutOrStdout(), result)
	if cfg.Metrics.EnableMetrics {
		metrics.WriteOnce(cmd.OutOrStdout())
	}
}

func randAddress(r *rand.Rand) string {
	pub := make([]byte, 33)
	r.Read(pub)
	return address.PubKeyToAddress(pub)
}

// Simulate 每一轮所有玩家各押注一次, 按比例 skip 放弃揭晓, 放弃的押注在期限后被没收
// 结束时检查奖池记录和奖池账户余额一致. progress 非空时每轮结束调用一次
func Simulate(exec *executor.Executor, rounds, players, skip int, r *rand.Rand, progress func()) (*SimulateResult, error) {
	if rounds < 0 || players <= 0 || skip < 0 || skip > 100 {
		return nil, errors.Wrapf(types.ErrInvalidParam, "rounds=%d players=%d skip=%d", rounds, players, skip)
	}
	msg, err := exec.Query(dty.DiceX, dty.FuncNameGetGameConfig, &types.ReqNil{})
	if err != nil {
		return nil, err
	}
	gcfg := msg.(*dty.GameConfig)
	addrs := make([]string, players)
	for i := range addrs {
		addrs[i] = randAddress(r)
		if _, err := exec.Faucet(addrs[i], gcfg.RequiredStake*int64(rounds)); err != nil {
			return nil, err
		}
	}
	result := &SimulateResult{Rounds: rounds}
	now := int64(1)
	secret := make([]byte, 8)
	for i := 0; i < rounds; i++ {
		var skipped []string
		for _, addr := range addrs {
			binary.BigEndian.PutUint64(secret, r.Uint64())
			guess := r.Int31n(gcfg.OutcomeModulus)
			d := dty.CommitDigest(secret, guess, gcfg.DigestPrefixLength)
			if _, err := exec.Execute(dty.CreateRawDiceCommitTx(addr, d, gcfg.RequiredStake), now); err != nil {
				return nil, errors.Wrapf(err, "commit round %d", i)
			}
			if r.Intn(100) < skip {
				skipped = append(skipped, addr)
				continue
			}
			receipt, err := exec.Execute(dty.CreateRawDiceRevealTx(addr, secret, guess), now+r.Int63n(gcfg.RevealWindow+1))
			if err != nil {
				return nil, errors.Wrapf(err, "reveal round %d", i)
			}
			for _, l := range receipt.GetLogs() {
				if l.GetTy() != dty.TyLogDiceReveal {
					continue
				}
				var rr dty.ReceiptDiceReveal
				if err := types.Decode(l.GetLog(), &rr); err != nil {
					return nil, err
				}
				if rr.Won {
					result.Wins++
				} else {
					result.Losses++
				}
			}
		}
		now += gcfg.RevealWindow + 1
		for _, addr := range skipped {
			if _, err := exec.Execute(dty.CreateRawDiceSweepTx(addrs[0], addr), now); err != nil {
				return nil, errors.Wrapf(err, "sweep round %d", i)
			}
			result.Forfeits++
		}
		now++
		if progress != nil {
			progress()
		}
	}
	msg, err = exec.Query(dty.DiceX, dty.FuncNameGetPrizePool, &types.ReqNil{})
	if err != nil {
		return nil, err
	}
	pool := msg.(*dty.PrizePool).GetAmount()
	funds := exec.GetExecBalance(dty.PrizePoolAddress(), dty.DiceX).GetBalance()
	result.PrizePool = types.FormatAmount(pool)
	result.PoolFunds = types.FormatAmount(funds)
	if pool != funds {
		return result, errors.Errorf("prize pool %d does not match pool account %d", pool, funds)
	}
	return result, nil
}
