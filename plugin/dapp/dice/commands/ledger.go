// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/33cn/dice/common"
	"github.com/33cn/dice/executor"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
	"github.com/33cn/dice/util"
	"github.com/spf13/cobra"
)

// loadConfig 没有配置文件时使用默认配置, 并把数据保存在 datadir 下的 leveldb 中
func loadConfig(cmd *cobra.Command) (*types.Config, *types.ConfigSubModule, error) {
	conf, _ := cmd.Flags().GetString("conf")
	if conf != "" {
		return types.InitCfg(conf)
	}
	cfg, sub, err := types.InitCfgString(types.GetDefaultCfgstring())
	if err != nil {
		return nil, nil, err
	}
	datadir, _ := cmd.Flags().GetString("datadir")
	if datadir != "" {
		cfg.Store.Driver = types.GoLevelDBBackendStr
		util.ResetDatadir(cfg, datadir)
	}
	return cfg, sub, nil
}

func openExecutor(cmd *cobra.Command) (*executor.Executor, error) {
	cfg, sub, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return executor.New(cfg, sub)
}

func blockTime(cmd *cobra.Command) int64 {
	t, _ := cmd.Flags().GetInt64("time")
	if t <= 0 {
		return time.Now().Unix()
	}
	return t
}

// parseSecret 0x 开头按照 hex 解析, 否则直接使用字符串的字节
func parseSecret(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return common.FromHex(s)
	}
	return []byte(s), nil
}

func runTx(cmd *cobra.Command, tx *types.Transaction) {
	exec, err := openExecutor(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	defer exec.Close()
	receipt, err := exec.Execute(tx, blockTime(cmd))
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	printReceipt(cmd.OutOrStdout(), receipt)
}

type logResult struct {
	Ty   int32         `json:"ty"`
	Name string        `json:"name"`
	Log  types.Message `json:"log"`
}

func printReceipt(w io.Writer, receipt *types.Receipt) {
	ety := types.LoadExecutorType(dty.DiceX)
	var logs []*logResult
	for _, l := range receipt.GetLogs() {
		name, msg, err := ety.DecodeReceiptLog(l.GetTy(), l.GetLog())
		if err != nil {
			continue
		}
		logs = append(logs, &logResult{Ty: l.GetTy(), Name: name, Log: msg})
	}
	printJSON(w, logs)
}

func printJSON(w io.Writer, v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, string(data))
}
