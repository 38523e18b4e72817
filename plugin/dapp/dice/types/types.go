// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/dice/common/address"
	"github.com/33cn/dice/common/log"
	"github.com/33cn/dice/types"
)

var tlog = log.New("module", DiceX)

func init() {
	types.RegistorExecutor(DiceX, NewType())
}

// NewType 新建 dice 执行器类型
func NewType() *DiceType {
	c := &DiceType{}
	c.SetChild(c)
	return c
}

// DiceType exec
type DiceType struct {
	types.ExecTypeBase
}

// GetName 执行器名称
func (d *DiceType) GetName() string {
	return DiceX
}

// GetLogMap 日志类型
func (d *DiceType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogDiceCommit:  {Ty: reflect.TypeOf(ReceiptDiceCommit{}), Name: "LogDiceCommit"},
		TyLogDiceReveal:  {Ty: reflect.TypeOf(ReceiptDiceReveal{}), Name: "LogDiceReveal"},
		TyLogDiceForfeit: {Ty: reflect.TypeOf(ReceiptDiceForfeit{}), Name: "LogDiceForfeit"},
	}
}

// GetPayload payload
func (d *DiceType) GetPayload() types.Message {
	return &DiceAction{}
}

// GetTypeMap action 名称与类型
func (d *DiceType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Commit":   DiceActionCommit,
		"Reveal":   DiceActionReveal,
		"Sweep":    DiceActionSweep,
		"Withdraw": DiceActionWithdraw,
	}
}

func createTx(from string, action *DiceAction) *types.Transaction {
	tx := &types.Transaction{
		Execer:  ExecerDice,
		Payload: types.Encode(action),
		To:      address.ExecAddress(DiceX),
		From:    from,
	}
	tlog.Debug("createTx", "from", from, "ty", action.Ty)
	return tx
}

// CreateRawDiceCommitTx 押注
func CreateRawDiceCommitTx(from string, digest []byte, amount int64) *types.Transaction {
	return createTx(from, &DiceAction{
		Ty:     DiceActionCommit,
		Commit: &DiceCommit{Digest: digest, Amount: amount},
	})
}

// CreateRawDiceRevealTx 揭晓
func CreateRawDiceRevealTx(from string, secret []byte, guess int32) *types.Transaction {
	return createTx(from, &DiceAction{
		Ty:     DiceActionReveal,
		Reveal: &DiceReveal{Secret: secret, Guess: guess},
	})
}

// CreateRawDiceSweepTx 没收超时的押注, 任何人都可以发起
func CreateRawDiceSweepTx(from string, committer string) *types.Transaction {
	return createTx(from, &DiceAction{
		Ty:    DiceActionSweep,
		Sweep: &DiceSweep{Committer: committer},
	})
}

// CreateRawDiceWithdrawTx 从合约账户取回资金
func CreateRawDiceWithdrawTx(from string, amount int64) *types.Transaction {
	return createTx(from, &DiceAction{
		Ty:       DiceActionWithdraw,
		Withdraw: &DiceWithdraw{Amount: amount},
	})
}
