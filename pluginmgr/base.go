// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/spf13/cobra"
)

// PluginBase plugin module base struct
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, sub []byte) error
	Cmd      func() *cobra.Command
}

// GetName 获取整个插件的包名
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName 获取执行器名
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec init exec
func (p *PluginBase) InitExec(sub map[string][]byte) error {
	if p.Exec == nil {
		return nil
	}
	subcfg, ok := sub[p.ExecName]
	if !ok {
		subcfg = nil
	}
	return p.Exec(p.ExecName, subcfg)
}

// AddCmd add Command for plugin cli
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}
