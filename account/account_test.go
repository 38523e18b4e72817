// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = address.PubKeyToAddress([]byte("account test key 1"))
	addr2 = address.PubKeyToAddress([]byte("account test key 2"))
)

func newTestCoins(t *testing.T) *DB {
	mdb, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	return NewCoinsAccount(mdb)
}

func TestAccountKey(t *testing.T) {
	acc := newTestCoins(t)
	assert.Equal(t, "mavl-coins-bty-"+addr1, string(acc.AccountKey(addr1)))
}

func TestLoadAccountEmpty(t *testing.T) {
	acc := newTestCoins(t)
	a := acc.LoadAccount(addr1)
	assert.Equal(t, addr1, a.Addr)
	assert.Equal(t, int64(0), a.Balance)
}

func TestTransfer(t *testing.T) {
	acc := newTestCoins(t)
	_, err := acc.GenesisInit(addr1, 10*types.Coin)
	require.NoError(t, err)

	_, err = acc.Transfer(addr1, addr1, types.Coin)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer(addr1, addr2, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.Transfer(addr1, addr2, 11*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err := acc.Transfer(addr1, addr2, 4*types.Coin)
	require.NoError(t, err)
	assert.Len(t, receipt.KV, 2)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, 6*types.Coin, acc.LoadAccount(addr1).Balance)
	assert.Equal(t, 4*types.Coin, acc.LoadAccount(addr2).Balance)
	assert.NoError(t, acc.CheckTransfer(addr2, addr1, 4*types.Coin))
	assert.Equal(t, types.ErrNoBalance, acc.CheckTransfer(addr2, addr1, 5*types.Coin))
}

func TestGenesisInitOverflow(t *testing.T) {
	acc := newTestCoins(t)
	_, err := acc.GenesisInit(addr1, types.MaxCoin)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.GenesisInit(addr1, types.MaxCoin-1)
	require.NoError(t, err)
	// 余额可以正好达到 MaxCoin, 但不能超过
	_, err = acc.GenesisInit(addr1, 1)
	require.NoError(t, err)
	assert.Equal(t, types.MaxCoin, acc.LoadAccount(addr1).Balance)
	_, err = acc.GenesisInit(addr1, 1)
	assert.Equal(t, types.ErrAmount, err)
}

func TestExecAccountFlow(t *testing.T) {
	acc := newTestCoins(t)
	execaddr := acc.ExecAddress("dice")
	other := acc.ExecAddress("other")
	_, err := acc.GenesisInit(addr1, 10*types.Coin)
	require.NoError(t, err)

	receipt, err := acc.TransferToExec(addr1, execaddr, 5*types.Coin)
	require.NoError(t, err)
	assert.Len(t, receipt.Logs, 3)
	assert.Equal(t, 5*types.Coin, acc.LoadAccount(execaddr).Balance)
	assert.Equal(t, 5*types.Coin, acc.LoadExecAccount(addr1, execaddr).Balance)

	_, err = acc.ExecFrozen(addr1, execaddr, 6*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.ExecFrozen(addr1, execaddr, 2*types.Coin)
	require.NoError(t, err)
	e := acc.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, 3*types.Coin, e.Balance)
	assert.Equal(t, 2*types.Coin, e.Frozen)

	_, err = acc.ExecTransferFrozen(addr1, other, execaddr, types.Coin)
	require.NoError(t, err)
	assert.Equal(t, types.Coin, acc.LoadExecAccount(addr1, execaddr).Frozen)
	assert.Equal(t, types.Coin, acc.LoadExecAccount(other, execaddr).Balance)

	_, err = acc.ExecActive(addr1, execaddr, 2*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.ExecActive(addr1, execaddr, types.Coin)
	require.NoError(t, err)
	e = acc.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, 4*types.Coin, e.Balance)
	assert.Equal(t, int64(0), e.Frozen)

	_, err = acc.ExecTransfer(other, addr1, execaddr, types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 5*types.Coin, acc.LoadExecAccount(addr1, execaddr).Balance)
	assert.Equal(t, int64(0), acc.LoadExecAccount(other, execaddr).Balance)

	_, err = acc.TransferWithdraw(addr1, execaddr, 6*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	receipt, err = acc.TransferWithdraw(addr1, execaddr, 5*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecWithdraw), receipt.Logs[0].Ty)
	assert.Equal(t, 10*types.Coin, acc.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(0), acc.LoadAccount(execaddr).Balance)
}
