// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"

	"github.com/33cn/dice/common/log"
	"github.com/33cn/dice/metrics"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	drivers "github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
)

var dlog = log.New("module", "execs.dice")

var driverName = dty.DiceX

var (
	commitCounter   = metrics.Counter("dice.commit")
	winCounter      = metrics.Counter("dice.reveal.win")
	lossCounter     = metrics.Counter("dice.reveal.loss")
	forfeitCounter  = metrics.Counter("dice.forfeit")
	withdrawCounter = metrics.Counter("dice.withdraw")
)

var (
	cfgLock      sync.RWMutex
	gameCfg      = dty.DefaultGameConfig()
	registerOnce sync.Once
)

func init() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Dice{}))
}

// Init 解析 [exec.sub.dice] 并注册执行器
func Init(name string, sub []byte) error {
	cfg, err := dty.ParseGameConfig(sub)
	if err != nil {
		dlog.Error("Init", "name", name, "err", err)
		return err
	}
	cfgLock.Lock()
	gameCfg = cfg
	cfgLock.Unlock()
	registerOnce.Do(func() {
		drivers.Register(GetName(), newDice)
	})
	dlog.Info("Init", "name", name, "requiredStake", cfg.RequiredStake, "revealWindow", cfg.RevealWindow,
		"digestPrefixLength", cfg.DigestPrefixLength, "outcomeModulus", cfg.OutcomeModulus)
	return nil
}

// GetName 执行器名称
func GetName() string {
	return driverName
}

// Dice 骰子游戏执行器
type Dice struct {
	drivers.DriverBase
	cfg *dty.GameConfig
}

func newDice() drivers.Driver {
	cfgLock.RLock()
	cfg := gameCfg
	cfgLock.RUnlock()
	return NewDice(cfg)
}

// NewDice 使用指定配置创建执行器, cfg 在执行器的生命周期内不变
func NewDice(cfg *dty.GameConfig) *Dice {
	d := &Dice{cfg: cfg}
	d.SetChild(d)
	d.SetExecutorType(types.LoadExecutorType(driverName))
	return d
}

// GetDriverName 驱动名称
func (d *Dice) GetDriverName() string {
	return driverName
}

// GetGameConfig 当前配置
func (d *Dice) GetGameConfig() *dty.GameConfig {
	return d.cfg
}
