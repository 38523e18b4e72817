// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/dice/common/address"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
)

// Query_GetPrizePool 奖池
func (d *Dice) Query_GetPrizePool(in *types.ReqNil) (types.Message, error) {
	pool, err := readPrizePool(d.GetStateDB())
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// Query_GetCommitment 查询地址未揭晓的押注
func (d *Dice) Query_GetCommitment(in *dty.ReqCommitment) (types.Message, error) {
	c, err := readCommitment(d.GetStateDB(), address.FormatAddr(in.GetCommitter()))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Query_GetGameConfig 当前配置
func (d *Dice) Query_GetGameConfig(in *types.ReqNil) (types.Message, error) {
	return types.Clone(d.cfg), nil
}

// Query_GetAccount 地址在 dice 合约中的账户
func (d *Dice) Query_GetAccount(in *dty.ReqCommitment) (types.Message, error) {
	if in.GetCommitter() == "" {
		return nil, types.ErrInvalidAddress
	}
	return d.GetCoinsAccount().LoadExecAccount(address.FormatAddr(in.GetCommitter()), dapp.ExecAddress(d.GetName())), nil
}
