// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// dice action ty
const (
	DiceActionCommit = iota + 1
	DiceActionReveal
	DiceActionSweep
	DiceActionWithdraw
)

// log ty
const (
	TyLogDiceCommit  = 1601
	TyLogDiceReveal  = 1602
	TyLogDiceForfeit = 1603
)

// DiceStatusCommitted 押注已提交, 等待揭晓
const DiceStatusCommitted = int32(1)

// DiceX 执行器名称
const DiceX = "dice"

// query func name
const (
	FuncNameGetPrizePool  = "GetPrizePool"
	FuncNameGetCommitment = "GetCommitment"
	FuncNameGetGameConfig = "GetGameConfig"
	FuncNameGetAccount    = "GetAccount"
)

var (
	// ExecerDice 执行器名称的字节形式
	ExecerDice = []byte(DiceX)
)
