// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dice 提交-揭晓两阶段的骰子游戏
package dice

import (
	"github.com/33cn/dice/plugin/dapp/dice/commands"
	"github.com/33cn/dice/plugin/dapp/dice/executor"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     dty.DiceX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.DiceCmd,
	})
}
