// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	ledger "github.com/33cn/dice/executor"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
	"github.com/33cn/dice/util"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addrA = address.PubKeyToAddress([]byte("dice test A"))
	addrB = address.PubKeyToAddress([]byte("dice test B"))
	addrC = address.PubKeyToAddress([]byte("dice test C"))
	stake = dty.DefaultRequiredStake
)

type testLedger struct {
	t    *testing.T
	exec *ledger.Executor
	cfg  *dty.GameConfig
}

func newTestLedger(t *testing.T, sub []byte) *testLedger {
	db, err := dbm.NewGoMemDB("dice", "", 0)
	require.NoError(t, err)
	return newTestLedgerDB(t, sub, db)
}

func newTestLedgerDB(t *testing.T, sub []byte, db dbm.DB) *testLedger {
	require.NoError(t, Init(dty.DiceX, sub))
	exec, err := ledger.NewWithDB(db, nil)
	require.NoError(t, err)
	cfg, err := dty.ParseGameConfig(sub)
	require.NoError(t, err)
	l := &testLedger{t: t, exec: exec, cfg: cfg}
	t.Cleanup(func() {
		exec.Close()
		require.NoError(t, Init(dty.DiceX, nil))
	})
	for _, addr := range []string{addrA, addrB, addrC} {
		_, err := exec.Faucet(addr, types.Coin)
		require.NoError(t, err)
	}
	return l
}

func (l *testLedger) commit(from string, secret []byte, guess int32, blocktime int64) (*types.Receipt, error) {
	d := dty.CommitDigest(secret, guess, l.cfg.DigestPrefixLength)
	return l.exec.Execute(dty.CreateRawDiceCommitTx(from, d, l.cfg.RequiredStake), blocktime)
}

func (l *testLedger) reveal(from string, secret []byte, guess int32, blocktime int64) (*dty.ReceiptDiceReveal, error) {
	receipt, err := l.exec.Execute(dty.CreateRawDiceRevealTx(from, secret, guess), blocktime)
	if err != nil {
		return nil, err
	}
	var r dty.ReceiptDiceReveal
	require.NoError(l.t, types.Decode(lastLog(l.t, receipt, dty.TyLogDiceReveal), &r))
	return &r, nil
}

func (l *testLedger) pool() int64 {
	msg, err := l.exec.Query(dty.DiceX, dty.FuncNameGetPrizePool, &types.ReqNil{})
	require.NoError(l.t, err)
	return msg.(*dty.PrizePool).GetAmount()
}

func (l *testLedger) poolFunds() int64 {
	return l.exec.GetExecBalance(dty.PrizePoolAddress(), dty.DiceX).GetBalance()
}

func (l *testLedger) diceAccount(addr string) *types.Account {
	return l.exec.GetExecBalance(addr, dty.DiceX)
}

func (l *testLedger) commitment(addr string) (*dty.Commitment, error) {
	msg, err := l.exec.Query(dty.DiceX, dty.FuncNameGetCommitment, &dty.ReqCommitment{Committer: addr})
	if err != nil {
		return nil, err
	}
	return msg.(*dty.Commitment), nil
}

func lastLog(t *testing.T, receipt *types.Receipt, ty int32) []byte {
	for i := len(receipt.Logs) - 1; i >= 0; i-- {
		if receipt.Logs[i].Ty == ty {
			return receipt.Logs[i].Log
		}
	}
	t.Fatalf("log %d not found", ty)
	return nil
}

// secretFor 找到一个骰子结果为 outcome 的 secret
func secretFor(outcome, modulus int32) []byte {
	for i := 0; ; i++ {
		secret := []byte(fmt.Sprintf("secret-%d", i))
		if dty.Roll(secret, modulus) == outcome {
			return secret
		}
	}
}

func TestCommitAndWin(t *testing.T) {
	l := newTestLedger(t, nil)
	secret := secretFor(3, 6)

	receipt, err := l.commit(addrA, secret, 3, 1000)
	require.NoError(t, err)
	var rc dty.ReceiptDiceCommit
	require.NoError(t, types.Decode(lastLog(t, receipt, dty.TyLogDiceCommit), &rc))
	assert.Equal(t, addrA, rc.Committer)
	assert.Equal(t, int64(1000), rc.CommittedAt)

	c, err := l.commitment(addrA)
	require.NoError(t, err)
	assert.Equal(t, stake, c.Stake)
	assert.Equal(t, dty.CommitDigest(secret, 3, 29), c.Digest)
	assert.Equal(t, types.Coin-stake, l.exec.GetBalance(addrA).GetBalance())
	assert.Equal(t, stake, l.diceAccount(addrA).GetFrozen())

	// 期限的最后一秒仍然可以揭晓
	r, err := l.reveal(addrA, secret, 3, 1000+dty.DefaultRevealWindow)
	require.NoError(t, err)
	assert.True(t, r.Won)
	assert.Equal(t, int32(3), r.Outcome)
	assert.Equal(t, stake, r.Payout)
	assert.Equal(t, int64(0), r.Prize)
	assert.Equal(t, int64(0), l.pool())
	assert.Equal(t, stake, l.diceAccount(addrA).GetBalance())
	assert.Equal(t, int64(0), l.diceAccount(addrA).GetFrozen())

	_, err = l.reveal(addrA, secret, 3, 1001)
	assert.Equal(t, dty.ErrNoSuchCommitment, err)
	_, err = l.commitment(addrA)
	assert.Equal(t, dty.ErrNoSuchCommitment, err)
}

func TestLossFeedsPoolAndWinnerDrains(t *testing.T) {
	l := newTestLedger(t, nil)
	lose := secretFor(2, 6)
	_, err := l.commit(addrA, lose, 5, 1000)
	require.NoError(t, err)
	r, err := l.reveal(addrA, lose, 5, 1100)
	require.NoError(t, err)
	assert.False(t, r.Won)
	assert.Equal(t, int32(2), r.Outcome)
	assert.Equal(t, int64(0), r.Payout)
	assert.Equal(t, stake, r.Prize)
	assert.Equal(t, stake, l.pool())
	assert.Equal(t, stake, l.poolFunds())
	assert.Equal(t, int64(0), l.diceAccount(addrA).GetFrozen())
	assert.Equal(t, int64(0), l.diceAccount(addrA).GetBalance())

	win := secretFor(0, 6)
	_, err = l.commit(addrB, win, 0, 1200)
	require.NoError(t, err)
	r, err = l.reveal(addrB, win, 0, 1300)
	require.NoError(t, err)
	assert.True(t, r.Won)
	assert.Equal(t, 2*stake, r.Payout)
	assert.Equal(t, int64(0), r.Prize)
	assert.Equal(t, int64(0), l.pool())
	assert.Equal(t, int64(0), l.poolFunds())
	assert.Equal(t, 2*stake, l.diceAccount(addrB).GetBalance())
	util.JSONPrint(t, r)
}

func TestDigestMismatchKeepsCommitment(t *testing.T) {
	l := newTestLedger(t, nil)
	secret := []byte("keep me")
	_, err := l.commit(addrA, secret, 1, 1000)
	require.NoError(t, err)

	_, err = l.reveal(addrA, secret, 2, 1001)
	assert.Equal(t, dty.ErrDigestMismatch, err)
	_, err = l.reveal(addrA, []byte("keep mf"), 1, 1001)
	assert.Equal(t, dty.ErrDigestMismatch, err)
	_, err = l.commitment(addrA)
	require.NoError(t, err)
	assert.Equal(t, stake, l.diceAccount(addrA).GetFrozen())

	r, err := l.reveal(addrA, secret, 1, 1002)
	require.NoError(t, err)
	assert.Equal(t, dty.Roll(secret, 6), r.Outcome)
	assert.Equal(t, r.Outcome == 1, r.Won)
}

func TestCommitErrors(t *testing.T) {
	l := newTestLedger(t, nil)
	d := dty.CommitDigest([]byte("s"), 1, 29)

	_, err := l.exec.Execute(dty.CreateRawDiceCommitTx(addrA, d, stake+1), 1000)
	assert.Equal(t, dty.ErrStakeMismatch, err)
	_, err = l.exec.Execute(dty.CreateRawDiceCommitTx(addrA, d, 0), 1000)
	assert.Equal(t, dty.ErrStakeMismatch, err)
	_, err = l.exec.Execute(dty.CreateRawDiceCommitTx(addrA, d[:28], stake), 1000)
	assert.Equal(t, dty.ErrMalformedDigest, err)
	_, err = l.exec.Execute(dty.CreateRawDiceCommitTx(addrA, dty.CommitDigest([]byte("s"), 1, 32), stake), 1000)
	assert.Equal(t, dty.ErrMalformedDigest, err)
	_, err = l.exec.Execute(dty.CreateRawDiceCommitTx(dty.PrizePoolAddress(), d, stake), 1000)
	assert.Equal(t, types.ErrInvalidAddress, err)
	assert.Equal(t, types.Coin, l.exec.GetBalance(addrA).GetBalance())

	poor := address.PubKeyToAddress([]byte("dice test poor"))
	_, err = l.exec.Execute(dty.CreateRawDiceCommitTx(poor, d, stake), 1000)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = l.commitment(poor)
	assert.Equal(t, dty.ErrNoSuchCommitment, err)

	_, err = l.exec.Execute(dty.CreateRawDiceCommitTx(addrA, d, stake), 1000)
	require.NoError(t, err)
	_, err = l.commit(addrA, []byte("other"), 2, 1001)
	assert.Equal(t, dty.ErrCommitmentAlreadyExists, err)
	c, err := l.commitment(addrA)
	require.NoError(t, err)
	assert.Equal(t, d, c.Digest)
	assert.Equal(t, int64(1000), c.CommittedAt)
	assert.Equal(t, types.Coin-stake, l.exec.GetBalance(addrA).GetBalance())
}

func TestMixedCaseAddress(t *testing.T) {
	l := newTestLedger(t, nil)
	upper := func(addr string) string { return "0x" + strings.ToUpper(addr[2:]) }
	secret := secretFor(1, 6)

	_, err := l.commit(upper(addrA), secret, 1, 1000)
	require.NoError(t, err)
	c, err := l.commitment(addrA)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.CommittedAt)
	c, err = l.commitment(upper(addrA))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.CommittedAt)
	_, err = l.commit(addrA, []byte("other"), 2, 1001)
	assert.Equal(t, dty.ErrCommitmentAlreadyExists, err)
	assert.Equal(t, types.Coin-stake, l.exec.GetBalance(upper(addrA)).GetBalance())
	assert.Equal(t, stake, l.diceAccount(upper(addrA)).GetFrozen())

	_, err = l.exec.Execute(dty.CreateRawDiceCommitTx(upper(dty.PrizePoolAddress()), dty.CommitDigest([]byte("s"), 1, 29), stake), 1002)
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = l.exec.Execute(dty.CreateRawDiceWithdrawTx(upper(dty.PrizePoolAddress()), 1), 1002)
	assert.Equal(t, types.ErrInvalidAddress, err)

	r, err := l.reveal(addrA, secret, 1, 1003)
	require.NoError(t, err)
	assert.True(t, r.Won)
	assert.Equal(t, stake, l.diceAccount(addrA).GetBalance())
}

func TestRevealExpiredAndSweep(t *testing.T) {
	l := newTestLedger(t, nil)
	secret := []byte("late")
	_, err := l.commit(addrA, secret, 1, 1000)
	require.NoError(t, err)
	deadline := int64(1000) + dty.DefaultRevealWindow

	_, err = l.exec.Execute(dty.CreateRawDiceSweepTx(addrC, addrA), deadline)
	assert.Equal(t, dty.ErrSweepNotYetEligible, err)
	_, err = l.exec.Execute(dty.CreateRawDiceSweepTx(addrC, addrB), deadline+1)
	assert.Equal(t, dty.ErrNoSuchCommitment, err)

	_, err = l.reveal(addrA, secret, 1, deadline+1)
	assert.Equal(t, dty.ErrRevealWindowExpired, err)

	receipt, err := l.exec.Execute(dty.CreateRawDiceSweepTx(addrC, addrA), deadline+1)
	require.NoError(t, err)
	var rf dty.ReceiptDiceForfeit
	require.NoError(t, types.Decode(lastLog(t, receipt, dty.TyLogDiceForfeit), &rf))
	assert.Equal(t, addrA, rf.Committer)
	assert.Equal(t, addrC, rf.Sweeper)
	assert.Equal(t, stake, rf.Stake)
	assert.Equal(t, stake, rf.Prize)
	assert.Equal(t, stake, l.pool())
	assert.Equal(t, stake, l.poolFunds())
	assert.Equal(t, int64(0), l.diceAccount(addrA).GetFrozen())
	assert.Equal(t, types.Coin, l.exec.GetBalance(addrC).GetBalance())

	_, err = l.exec.Execute(dty.CreateRawDiceSweepTx(addrC, addrA), deadline+2)
	assert.Equal(t, dty.ErrNoSuchCommitment, err)
	_, err = l.reveal(addrA, secret, 1, deadline+2)
	assert.Equal(t, dty.ErrNoSuchCommitment, err)

	// 没收之后可以再次押注
	_, err = l.commit(addrA, secret, 1, deadline+3)
	require.NoError(t, err)
}

func TestRevealDeadlineOverflow(t *testing.T) {
	l := newTestLedger(t, nil)
	now := int64(math.MaxInt64 - 10)
	secret := secretFor(1, 6)
	_, err := l.commit(addrA, secret, 1, now)
	require.NoError(t, err)

	_, err = l.exec.Execute(dty.CreateRawDiceSweepTx(addrB, addrA), math.MaxInt64)
	assert.Equal(t, dty.ErrSweepNotYetEligible, err)
	r, err := l.reveal(addrA, secret, 1, math.MaxInt64)
	require.NoError(t, err)
	assert.True(t, r.Won)
}

func TestGuessOutOfRange(t *testing.T) {
	l := newTestLedger(t, nil)
	secret := []byte("range")
	_, err := l.commit(addrA, secret, 6, 1000)
	require.NoError(t, err)
	_, err = l.reveal(addrA, secret, 6, 1001)
	assert.Equal(t, dty.ErrGuessOutOfRange, err)
	_, err = l.reveal(addrA, secret, -1, 1001)
	assert.Equal(t, dty.ErrGuessOutOfRange, err)
	_, err = l.commitment(addrA)
	assert.NoError(t, err)
}

func TestWithdraw(t *testing.T) {
	l := newTestLedger(t, nil)
	secret := secretFor(4, 6)
	_, err := l.commit(addrA, secret, 4, 1000)
	require.NoError(t, err)

	// 冻结的押注不能取回
	_, err = l.exec.Execute(dty.CreateRawDiceWithdrawTx(addrA, stake), 1001)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = l.exec.Execute(dty.CreateRawDiceWithdrawTx(addrA, 0), 1001)
	assert.Equal(t, types.ErrAmount, err)

	_, err = l.reveal(addrA, secret, 4, 1002)
	require.NoError(t, err)
	_, err = l.exec.Execute(dty.CreateRawDiceWithdrawTx(addrA, stake), 1003)
	require.NoError(t, err)
	assert.Equal(t, types.Coin, l.exec.GetBalance(addrA).GetBalance())
	assert.Equal(t, int64(0), l.diceAccount(addrA).GetBalance())
}

func TestWithdrawFromPrizePool(t *testing.T) {
	l := newTestLedger(t, nil)
	lose := secretFor(2, 6)
	_, err := l.commit(addrB, lose, 3, 1000)
	require.NoError(t, err)
	_, err = l.reveal(addrB, lose, 3, 1001)
	require.NoError(t, err)
	require.Equal(t, stake, l.pool())

	_, err = l.exec.Execute(dty.CreateRawDiceWithdrawTx(dty.PrizePoolAddress(), stake), 1002)
	assert.Equal(t, types.ErrInvalidAddress, err)
	assert.Equal(t, stake, l.pool())
	assert.Equal(t, l.pool(), l.poolFunds())

	win := secretFor(5, 6)
	_, err = l.commit(addrC, win, 5, 1003)
	require.NoError(t, err)
	r, err := l.reveal(addrC, win, 5, 1004)
	require.NoError(t, err)
	assert.True(t, r.Won)
	assert.Equal(t, int64(0), l.poolFunds())
	assert.Equal(t, 2*stake, l.diceAccount(addrC).GetBalance())
}

func TestQuery(t *testing.T) {
	l := newTestLedger(t, []byte(`{"requiredStake":100000000,"outcomeModulus":2,"revealWindow":60}`))
	msg, err := l.exec.Query(dty.DiceX, dty.FuncNameGetGameConfig, nil)
	require.NoError(t, err)
	cfg := msg.(*dty.GameConfig)
	assert.Equal(t, types.Coin, cfg.RequiredStake)
	assert.Equal(t, int64(60), cfg.RevealWindow)
	assert.Equal(t, int32(2), cfg.OutcomeModulus)
	assert.Equal(t, dty.DefaultDigestPrefixLength, cfg.DigestPrefixLength)

	assert.Equal(t, int64(0), l.pool())
	_, err = l.commitment(addrA)
	assert.Equal(t, dty.ErrNoSuchCommitment, err)

	_, err = l.commit(addrA, []byte("q"), 1, 10)
	require.NoError(t, err)
	msg, err = l.exec.Query(dty.DiceX, dty.FuncNameGetAccount, &dty.ReqCommitment{Committer: addrA})
	require.NoError(t, err)
	assert.Equal(t, types.Coin, msg.(*types.Account).GetFrozen())
	_, err = l.exec.Query(dty.DiceX, dty.FuncNameGetAccount, &dty.ReqCommitment{})
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = l.exec.Query(dty.DiceX, "GetNothing", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)

	_, err = l.exec.Execute(dty.CreateRawDiceSweepTx(addrB, addrA), 71)
	require.NoError(t, err)
	assert.Equal(t, types.Coin, l.pool())
}

func TestBadGameConfig(t *testing.T) {
	err := Init(dty.DiceX, []byte(`{"outcomeModulus":257}`))
	assert.Equal(t, dty.ErrBadGameConfig, errors.Cause(err))
	err = Init(dty.DiceX, []byte(`{"revealWindow":`))
	assert.Equal(t, dty.ErrBadGameConfig, errors.Cause(err))
	assert.True(t, proto.Equal(dty.DefaultGameConfig(), newDice().(*Dice).GetGameConfig()))
}

// 随机进行多轮游戏, 奖池记录始终等于奖池账户余额, 资金总量不变
func TestRandomPlayConservation(t *testing.T) {
	dir, db := util.CreateTestDB()
	t.Cleanup(func() { os.RemoveAll(dir) })
	l := newTestLedgerDB(t, nil, db)
	players := []string{addrA, addrB, addrC}
	r := rand.New(rand.NewSource(33))
	now := int64(1)
	total := func() int64 {
		sum := l.poolFunds()
		for _, p := range players {
			acc := l.diceAccount(p)
			sum += l.exec.GetBalance(p).GetBalance() + acc.GetBalance() + acc.GetFrozen()
		}
		return sum
	}
	require.Equal(t, 3*types.Coin, total())
	diceAddr := dapp.ExecAddress(dty.DiceX)

	for round := 0; round < 30; round++ {
		var pending []string
		for i, p := range players {
			secret := []byte(fmt.Sprintf("round-%d-%d", round, i))
			guess := r.Int31n(6)
			_, err := l.commit(p, secret, guess, now)
			require.NoError(t, err)
			if r.Intn(4) == 0 {
				pending = append(pending, p)
				continue
			}
			res, err := l.reveal(p, secret, guess, now+r.Int63n(dty.DefaultRevealWindow+1))
			require.NoError(t, err)
			assert.Equal(t, res.Prize, l.pool())
		}
		now += dty.DefaultRevealWindow + 1
		for _, p := range pending {
			_, err := l.exec.Execute(dty.CreateRawDiceSweepTx(players[0], p), now)
			require.NoError(t, err)
		}
		assert.Equal(t, l.pool(), l.poolFunds())
		assert.Equal(t, 3*types.Coin, total())
		// 合约地址在 coins 中的余额等于所有合约账户之和
		assert.Equal(t, total()-l.exec.GetBalance(addrA).GetBalance()-l.exec.GetBalance(addrB).GetBalance()-
			l.exec.GetBalance(addrC).GetBalance(), l.exec.GetBalance(diceAddr).GetBalance())
		now++
	}
}
