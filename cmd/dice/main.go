// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/dice/common/log"
	"github.com/33cn/dice/metrics"
	_ "github.com/33cn/dice/plugin/dapp/dice"
	"github.com/33cn/dice/pluginmgr"
	"github.com/33cn/dice/types"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:              "dice-cli",
	Short:            "dice local ledger tools",
	PersistentPreRun: setup,
}

func init() {
	pluginmgr.AddCmd(rootCmd)
}

// setup 按照 --conf 初始化日志和统计
func setup(cmd *cobra.Command, args []string) {
	conf, _ := cmd.Flags().GetString("conf")
	var cfg *types.Config
	var err error
	if conf != "" {
		cfg, _, err = types.InitCfg(conf)
	} else {
		cfg, _, err = types.InitCfgString(types.GetDefaultCfgstring())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.SetFileLog(cfg.Log)
	metrics.StartMetrics(cfg.Metrics)
}

func main() {
	defer log.Close()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
