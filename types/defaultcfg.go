// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var cfgstring = `
title="local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "debug"
logConsoleLevel = "error"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下
logFile = ""
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true
callerFile = false
callerFunction = false

[store]
# memdb, leveldb, goleveldb 或者 gobadgerdb
name="state"
driver="memdb"
dbPath="datadir"
dbCache=64

[metrics]
enableMetrics=false
# log 或者 prometheus
dataEmitMode="log"
duration=60
listenAddr="localhost:9611"

[exec.sub.dice]
# 0.004 coin
requiredStake=400000
# 秒
revealWindow=3600
digestPrefixLength=29
outcomeModulus=6
`

// GetDefaultCfgstring 默认配置
func GetDefaultCfgstring() string {
	return cfgstring
}
