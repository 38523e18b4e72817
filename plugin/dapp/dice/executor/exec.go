// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
)

// Exec_Commit 押注
func (d *Dice) Exec_Commit(payload *dty.DiceCommit, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.Commit(payload)
}

// Exec_Reveal 揭晓
func (d *Dice) Exec_Reveal(payload *dty.DiceReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.Reveal(payload)
}

// Exec_Sweep 没收超时未揭晓的押注
func (d *Dice) Exec_Sweep(payload *dty.DiceSweep, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.SweepExpired(payload)
}

// Exec_Withdraw 取回合约账户中的资金
func (d *Dice) Exec_Withdraw(payload *dty.DiceWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(d, tx, index)
	return action.Withdraw(payload)
}
