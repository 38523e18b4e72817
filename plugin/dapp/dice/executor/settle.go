// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/dice/account"
	dbm "github.com/33cn/dice/common/db"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
	"github.com/pkg/errors"
)

// SettlementResult 结算结果
type SettlementResult struct {
	Outcome int32
	Won     bool
	// 赢的时候为 押注 + 奖池, 输的时候为 0
	Payout int64
	// 结算之后的奖池
	Prize int64
}

// settlement 校验摘要, 掷骰子, 移动资金
type settlement struct {
	acc      *account.DB
	db       dbm.KV
	execaddr string
	cfg      *dty.GameConfig
}

func newSettlement(action *Action) *settlement {
	return &settlement{
		acc:      action.coinsAccount,
		db:       action.db,
		execaddr: action.execaddr,
		cfg:      action.cfg,
	}
}

// VerifyAndSettle 赢: 解冻押注并把整个奖池转给押注者 (只记在合约账户中, 需要自己 withdraw)
// 输: 冻结的押注转入奖池
func (s *settlement) VerifyAndSettle(c *dty.Commitment, secret []byte, guess int32) (*SettlementResult, *types.Receipt, error) {
	digest := dty.CommitDigest(secret, guess, s.cfg.DigestPrefixLength)
	if !bytes.Equal(digest, c.GetDigest()) {
		return nil, nil, dty.ErrDigestMismatch
	}
	outcome := dty.Roll(secret, s.cfg.OutcomeModulus)
	pool, err := readPrizePool(s.db)
	if err != nil {
		return nil, nil, err
	}
	result := &SettlementResult{Outcome: outcome}
	var receipt *types.Receipt
	if guess == outcome {
		receipt, err = s.acc.ExecActive(c.Committer, s.execaddr, c.Stake)
		if err != nil {
			return nil, nil, errors.Wrap(err, "unfreeze stake")
		}
		if pool.Amount > 0 {
			r2, err := s.acc.ExecTransfer(dty.PrizePoolAddress(), c.Committer, s.execaddr, pool.Amount)
			if err != nil {
				return nil, nil, errors.Wrap(err, "drain prize pool")
			}
			receipt = types.MergeReceipt(receipt, r2)
		}
		result.Won = true
		result.Payout = c.Stake + pool.Amount
		pool.Amount = 0
	} else {
		receipt, err = s.acc.ExecTransferFrozen(c.Committer, dty.PrizePoolAddress(), s.execaddr, c.Stake)
		if err != nil {
			return nil, nil, errors.Wrap(err, "stake to prize pool")
		}
		pool.Amount += c.Stake
	}
	kv, err := savePrizePool(s.db, pool)
	if err != nil {
		return nil, nil, err
	}
	receipt.KV = append(receipt.KV, kv...)
	result.Prize = pool.Amount
	return result, receipt, nil
}
