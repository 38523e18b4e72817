// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor dice
import (
	"github.com/33cn/dice/account"
	"github.com/33cn/dice/common"
	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
	"github.com/pkg/errors"
)

/*
  押注的生命周期:
  没有押注 -> Commit -> 已押注 -> Reveal (结算) 或者 Sweep (超时没收) -> 没有押注

  结算和没收之后押注记录直接删除, 所以同一个地址可以再次押注。
  揭晓期限: blocktime <= committedAt + revealWindow 可以揭晓,
  blocktime > committedAt + revealWindow 只能被没收。
*/

// Action 一笔 dice 交易的执行环境
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
	cfg          *dty.GameConfig
}

// NewAction new action
func NewAction(d *Dice, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: d.GetCoinsAccount(),
		db:           d.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From,
		blocktime:    d.GetBlockTime(),
		height:       d.GetHeight(),
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		index:        index,
		cfg:          d.cfg,
	}
}

func (action *Action) readCommitment(addr string) (*dty.Commitment, error) {
	return readCommitment(action.db, addr)
}

func readCommitment(db dbm.KV, addr string) (*dty.Commitment, error) {
	data, err := db.Get(commitKey(addr))
	if err != nil {
		return nil, dty.ErrNoSuchCommitment
	}
	var c dty.Commitment
	//decode
	err = types.Decode(data, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "decode commitment %s", addr)
	}
	return &c, nil
}

func (action *Action) saveCommitment(c *dty.Commitment) []*types.KeyValue {
	key := commitKey(c.Committer)
	value := types.Encode(c)
	action.db.Set(key, value)
	return []*types.KeyValue{{Key: key, Value: value}}
}

func (action *Action) deleteCommitment(addr string) []*types.KeyValue {
	key := commitKey(addr)
	action.db.Set(key, nil)
	return []*types.KeyValue{{Key: key, Value: nil}}
}

// Commit 押注: 固定金额从 coins 账户转入合约并冻结
func (action *Action) Commit(commit *dty.DiceCommit) (*types.Receipt, error) {
	if commit.GetAmount() != action.cfg.RequiredStake {
		dlog.Error("DiceCommit", "addr", action.fromaddr, "amount", commit.GetAmount(),
			"required", action.cfg.RequiredStake, "err", dty.ErrStakeMismatch)
		return nil, dty.ErrStakeMismatch
	}
	if len(commit.GetDigest()) != int(action.cfg.DigestPrefixLength) {
		dlog.Error("DiceCommit", "addr", action.fromaddr, "digestLen", len(commit.GetDigest()), "err", dty.ErrMalformedDigest)
		return nil, dty.ErrMalformedDigest
	}
	if action.fromaddr == dty.PrizePoolAddress() {
		return nil, types.ErrInvalidAddress
	}
	_, err := action.readCommitment(action.fromaddr)
	if err == nil {
		dlog.Error("DiceCommit", "addr", action.fromaddr, "err", dty.ErrCommitmentAlreadyExists)
		return nil, dty.ErrCommitmentAlreadyExists
	}
	if err != dty.ErrNoSuchCommitment {
		return nil, err
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receipt, err := action.coinsAccount.TransferToExec(action.fromaddr, action.execaddr, commit.GetAmount())
	if err != nil {
		dlog.Error("DiceCommit.TransferToExec", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", commit.GetAmount(), "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	//冻结子账户资金
	receipt, err = action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, commit.GetAmount())
	if err != nil {
		dlog.Error("DiceCommit.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", commit.GetAmount(), "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	c := &dty.Commitment{
		Committer:   action.fromaddr,
		Digest:      commit.GetDigest(),
		Stake:       commit.GetAmount(),
		CommittedAt: action.blocktime,
		Status:      dty.DiceStatusCommitted,
	}
	kv = append(kv, action.saveCommitment(c)...)
	r := &dty.ReceiptDiceCommit{
		Committer:   c.Committer,
		Digest:      c.Digest,
		Stake:       c.Stake,
		CommittedAt: c.CommittedAt,
	}
	logs = append(logs, &types.ReceiptLog{Ty: dty.TyLogDiceCommit, Log: types.Encode(r)})
	commitCounter.Inc(1)
	dlog.Debug("DiceCommit", "addr", action.fromaddr, "digest", common.ToHex(c.Digest), "committedAt", c.CommittedAt,
		"height", action.height, "txhash", common.ToHex(action.txhash))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Reveal 揭晓: 校验摘要, 结算, 删除押注
// 摘要不符时押注保留, 期限内可以重试
func (action *Action) Reveal(reveal *dty.DiceReveal) (*types.Receipt, error) {
	c, err := action.readCommitment(action.fromaddr)
	if err != nil {
		dlog.Error("DiceReveal", "addr", action.fromaddr, "err", err)
		return nil, err
	}
	if action.blocktime > action.cfg.RevealDeadline(c.GetCommittedAt()) {
		dlog.Error("DiceReveal", "addr", action.fromaddr, "committedAt", c.GetCommittedAt(),
			"blocktime", action.blocktime, "err", dty.ErrRevealWindowExpired)
		return nil, dty.ErrRevealWindowExpired
	}
	guess := reveal.GetGuess()
	if guess < 0 || guess >= action.cfg.OutcomeModulus {
		dlog.Error("DiceReveal", "addr", action.fromaddr, "guess", guess, "err", dty.ErrGuessOutOfRange)
		return nil, dty.ErrGuessOutOfRange
	}
	engine := newSettlement(action)
	result, receipt, err := engine.VerifyAndSettle(c, reveal.GetSecret(), guess)
	if err != nil {
		dlog.Error("DiceReveal", "addr", action.fromaddr, "err", err)
		return nil, err
	}
	logs := receipt.Logs
	kv := receipt.KV
	kv = append(kv, action.deleteCommitment(c.Committer)...)
	r := &dty.ReceiptDiceReveal{
		Committer: c.Committer,
		Guess:     guess,
		Outcome:   result.Outcome,
		Payout:    result.Payout,
		Won:       result.Won,
		Prize:     result.Prize,
	}
	logs = append(logs, &types.ReceiptLog{Ty: dty.TyLogDiceReveal, Log: types.Encode(r)})
	if result.Won {
		winCounter.Inc(1)
	} else {
		lossCounter.Inc(1)
	}
	dlog.Debug("DiceReveal", "addr", c.Committer, "guess", guess, "outcome", result.Outcome, "payout", result.Payout)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// SweepExpired 任何人都可以把超时未揭晓的押注没收到奖池
func (action *Action) SweepExpired(sweep *dty.DiceSweep) (*types.Receipt, error) {
	target := address.FormatAddr(sweep.GetCommitter())
	c, err := action.readCommitment(target)
	if err != nil {
		dlog.Error("DiceSweep", "sweeper", action.fromaddr, "committer", target, "err", err)
		return nil, err
	}
	if action.blocktime <= action.cfg.RevealDeadline(c.GetCommittedAt()) {
		dlog.Error("DiceSweep", "committer", target, "committedAt", c.GetCommittedAt(),
			"blocktime", action.blocktime, "err", dty.ErrSweepNotYetEligible)
		return nil, dty.ErrSweepNotYetEligible
	}
	pool, err := readPrizePool(action.db)
	if err != nil {
		return nil, err
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	receipt, err := action.coinsAccount.ExecTransferFrozen(c.Committer, dty.PrizePoolAddress(), action.execaddr, c.Stake)
	if err != nil {
		dlog.Error("DiceSweep.ExecTransferFrozen", "committer", c.Committer, "amount", c.Stake, "err", err)
		return nil, errors.Wrap(err, "forfeit stake")
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	pool.Amount += c.Stake
	poolkv, err := savePrizePool(action.db, pool)
	if err != nil {
		return nil, err
	}
	kv = append(kv, poolkv...)
	kv = append(kv, action.deleteCommitment(c.Committer)...)
	r := &dty.ReceiptDiceForfeit{
		Committer: c.Committer,
		Stake:     c.Stake,
		Sweeper:   action.fromaddr,
		Prize:     pool.Amount,
	}
	logs = append(logs, &types.ReceiptLog{Ty: dty.TyLogDiceForfeit, Log: types.Encode(r)})
	forfeitCounter.Inc(1)
	dlog.Debug("DiceSweep", "committer", c.Committer, "sweeper", action.fromaddr, "prize", pool.Amount)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// Withdraw 把合约中可用的资金取回 coins 账户, 冻结的押注不能取
func (action *Action) Withdraw(withdraw *dty.DiceWithdraw) (*types.Receipt, error) {
	if !types.CheckAmount(withdraw.GetAmount()) {
		return nil, types.ErrAmount
	}
	// 奖池资金只能通过结算移动
	if action.fromaddr == dty.PrizePoolAddress() {
		dlog.Error("DiceWithdraw", "addr", action.fromaddr, "err", types.ErrInvalidAddress)
		return nil, types.ErrInvalidAddress
	}
	receipt, err := action.coinsAccount.TransferWithdraw(action.fromaddr, action.execaddr, withdraw.GetAmount())
	if err != nil {
		dlog.Error("DiceWithdraw", "addr", action.fromaddr, "amount", withdraw.GetAmount(), "err", err)
		return nil, err
	}
	withdrawCounter.Inc(1)
	return receipt, nil
}
