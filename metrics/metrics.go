// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 统计数据, 可以定时输出到日志或者通过 prometheus 暴露
package metrics

import (
	"fmt"
	"io"
	"time"

	dlog "github.com/33cn/dice/common/log"
	"github.com/33cn/dice/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var (
	log = dlog.New("module", "dice metrics")
)

// 支持的输出方式
const (
	EmitModeLog        = "log"
	EmitModePrometheus = "prometheus"
)

type logPrinter struct{}

func (logPrinter) Printf(format string, v ...interface{}) {
	log.Info(fmt.Sprintf(format, v...))
}

// StartMetrics 根据配置文件相关参数启动m
func StartMetrics(metrics *types.Metrics) {
	if metrics == nil || !metrics.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return
	}
	duration := time.Duration(metrics.Duration) * time.Second
	if duration <= 0 {
		duration = time.Minute
	}
	switch metrics.DataEmitMode {
	case EmitModeLog:
		log.Info("StartMetrics with log", "duration", duration)
		go go_metrics.Log(go_metrics.DefaultRegistry, duration, logPrinter{})
	case EmitModePrometheus:
		log.Info("StartMetrics with prometheus", "listenAddr", metrics.ListenAddr)
		go func() {
			err := ServePrometheus(metrics.ListenAddr, go_metrics.DefaultRegistry)
			if err != nil {
				log.Error("ServePrometheus", "err", err)
			}
		}()
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", metrics.DataEmitMode)
	}
}

// Counter 在默认 registry 中获取或者注册计数器
func Counter(name string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(name, go_metrics.DefaultRegistry)
}

// Meter 在默认 registry 中获取或者注册 meter
func Meter(name string) go_metrics.Meter {
	return go_metrics.GetOrRegisterMeter(name, go_metrics.DefaultRegistry)
}

// WriteOnce 输出当前的统计快照
func WriteOnce(w io.Writer) {
	go_metrics.WriteOnce(go_metrics.DefaultRegistry, w)
}
