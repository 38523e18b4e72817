// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 本地账本: 串行执行交易, 交易成功后才写入数据库
package executor

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/33cn/dice/account"
	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/common/log"
	"github.com/33cn/dice/metrics"
	"github.com/33cn/dice/pluginmgr"
	drivers "github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
	pkgerr "github.com/pkg/errors"
)

var elog = log.New("module", "execs")

var (
	// ErrNotAllowKey 执行器写了不属于自己的 key
	ErrNotAllowKey = errors.New("ErrNotAllowKey")
	// ErrNotAllowMemSetKey 写入的 key 没有出现在 receipt 中
	ErrNotAllowMemSetKey = errors.New("ErrNotAllowMemSetKey")
	// ErrEmptyReceipt 执行器没有返回 receipt
	ErrEmptyReceipt = errors.New("ErrEmptyReceipt")
)

var heightKey = []byte("exec-height")

var rejectedMeter = metrics.Meter("exec.rejected")

// Executor 本地账本
type Executor struct {
	mu     sync.Mutex
	db     dbm.DB
	height int64
}

// New 按照配置打开数据库并初始化所有插件
func New(cfg *types.Config, sub *types.ConfigSubModule) (*Executor, error) {
	store := cfg.Store
	db, err := dbm.NewDB(store.Name, store.Driver, store.DbPath, store.DbCache)
	if err != nil {
		return nil, pkgerr.Wrapf(types.ErrDBBackend, "%v", err)
	}
	exec, err := NewWithDB(db, sub)
	if err != nil {
		db.Close()
		return nil, err
	}
	return exec, nil
}

// NewWithDB 使用已经打开的数据库
func NewWithDB(db dbm.DB, sub *types.ConfigSubModule) (*Executor, error) {
	var subcfg map[string][]byte
	if sub != nil {
		subcfg = sub.Exec
	}
	if err := pluginmgr.InitExec(subcfg); err != nil {
		return nil, err
	}
	exec := &Executor{db: db}
	value, err := db.Get(heightKey)
	if err == nil && len(value) == 8 {
		exec.height = int64(binary.BigEndian.Uint64(value))
	}
	elog.Info("executor start", "height", exec.height)
	return exec, nil
}

// Close 关闭数据库
func (exec *Executor) Close() {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	exec.db.Close()
}

// Height 已经执行成功的交易数
func (exec *Executor) Height() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

func (exec *Executor) loadDriver(execer []byte) (drivers.Driver, error) {
	if len(execer) == 0 {
		return nil, types.ErrEmptyTx
	}
	d, err := drivers.LoadDriver(string(execer))
	if err != nil {
		return nil, pkgerr.Wrapf(types.ErrExecNotFound, "execer=%s", string(execer))
	}
	return d, nil
}

// Execute 执行一笔交易, blocktime 为交易所在区块的时间
// 交易失败时, 状态数据库不会有任何改变
func (exec *Executor) Execute(tx *types.Transaction, blocktime int64) (receipt *types.Receipt, err error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	defer func() {
		if err != nil {
			rejectedMeter.Mark(1)
		}
	}()
	if tx == nil {
		return nil, types.ErrEmptyTx
	}
	if err := address.CheckAddress(tx.From); err != nil {
		return nil, pkgerr.Wrapf(types.ErrInvalidAddress, "from=%s", tx.From)
	}
	// 大小写不同的写法是同一个地址
	if from := address.FormatAddr(tx.From); from != tx.From {
		tx = types.Clone(tx).(*types.Transaction)
		tx.From = from
	}
	d, err := exec.loadDriver(tx.Execer)
	if err != nil {
		return nil, err
	}
	height := exec.height + 1
	statedb := NewStateDB(exec.db)
	d.SetStateDB(statedb)
	d.SetEnv(height, blocktime)
	if err := d.CheckTx(tx, 0); err != nil {
		return nil, err
	}

	statedb.Begin()
	receipt, err = d.Exec(tx, 0)
	if err == nil && receipt == nil {
		err = ErrEmptyReceipt
	}
	if err == nil {
		err = checkKV(statedb.GetSetKeys(), receipt.KV)
	}
	if err == nil {
		err = checkKeyAllow(tx.Execer, receipt.KV)
	}
	if err != nil {
		statedb.Rollback()
		elog.Debug("exec tx", "execer", string(tx.Execer), "action", d.GetActionName(tx), "from", tx.From, "err", err)
		return nil, err
	}
	statedb.Commit()
	if err := exec.flush(statedb, height); err != nil {
		return nil, err
	}
	elog.Debug("exec tx", "execer", string(tx.Execer), "action", d.GetActionName(tx), "height", height)
	return receipt, nil
}

func (exec *Executor) flush(statedb *StateDB, height int64) error {
	batch := exec.db.NewBatch(true)
	statedb.WriteTo(batch)
	var h [8]byte
	binary.BigEndian.PutUint64(h[:], uint64(height))
	batch.Set(heightKey, h[:])
	if err := batch.Write(); err != nil {
		elog.Error("flush", "height", height, "err", err)
		return pkgerr.Wrap(err, "write state")
	}
	exec.height = height
	return nil
}

// Query 调用执行器的 Query_ 方法
func (exec *Executor) Query(execer string, funcname string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	d, err := exec.loadDriver([]byte(execer))
	if err != nil {
		return nil, err
	}
	d.SetStateDB(NewStateDB(exec.db))
	d.SetEnv(exec.height, 0)
	if param == nil {
		param = &types.ReqNil{}
	}
	return d.Query(funcname, types.Encode(param))
}

// Faucet 给地址增发资金, 只在本地账本使用
func (exec *Executor) Faucet(addr string, amount int64) (*types.Receipt, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if err := address.CheckAddress(addr); err != nil {
		return nil, pkgerr.Wrapf(types.ErrInvalidAddress, "addr=%s", addr)
	}
	statedb := NewStateDB(exec.db)
	statedb.Begin()
	receipt, err := account.NewCoinsAccount(statedb).GenesisInit(address.FormatAddr(addr), amount)
	if err != nil {
		statedb.Rollback()
		return nil, err
	}
	statedb.Commit()
	if err := exec.flush(statedb, exec.height+1); err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetBalance coins 账户
func (exec *Executor) GetBalance(addr string) *types.Account {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return account.NewCoinsAccount(NewStateDB(exec.db)).LoadAccount(address.FormatAddr(addr))
}

// GetExecBalance addr 在执行器 execer 中的账户
func (exec *Executor) GetExecBalance(addr string, execer string) *types.Account {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	acc := account.NewCoinsAccount(NewStateDB(exec.db))
	return acc.LoadExecAccount(address.FormatAddr(addr), drivers.ExecAddress(execer))
}
