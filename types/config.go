// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config 配置文件
type Config struct {
	Title   string   `toml:"title" json:"title,omitempty"`
	Log     *Log     `toml:"log" json:"log,omitempty"`
	Store   *Store   `toml:"store" json:"store,omitempty"`
	Metrics *Metrics `toml:"metrics" json:"metrics,omitempty"`
	Exec    *Exec    `toml:"exec" json:"exec,omitempty"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel" json:"loglevel,omitempty"`
	LogConsoleLevel string `toml:"logConsoleLevel" json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile" json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize" json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups" json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge" json:"maxAge,omitempty"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `toml:"localTime" json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress" json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile" json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction" json:"callerFunction,omitempty"`
}

// Store 状态数据库配置
type Store struct {
	Name    string `toml:"name" json:"name,omitempty"`
	Driver  string `toml:"driver" json:"driver,omitempty"`
	DbPath  string `toml:"dbPath" json:"dbPath,omitempty"`
	DbCache int32  `toml:"dbCache" json:"dbCache,omitempty"`
}

// Metrics 统计配置
type Metrics struct {
	EnableMetrics bool   `toml:"enableMetrics" json:"enableMetrics,omitempty"`
	DataEmitMode  string `toml:"dataEmitMode" json:"dataEmitMode,omitempty"`
	// 以秒为单位
	Duration int64 `toml:"duration" json:"duration,omitempty"`
	// prometheus 模式下的监听地址
	ListenAddr string `toml:"listenAddr" json:"listenAddr,omitempty"`
}

// Exec 执行器配置, Sub 为各个执行器的子配置
type Exec struct {
	Sub map[string]interface{} `toml:"sub" json:"sub,omitempty"`
}

// ConfigSubModule 子模块配置, 以 json 格式保存, 由各个模块自行解析
type ConfigSubModule struct {
	Exec map[string][]byte
}

// InitCfg 从文件读取配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read config %s", path)
	}
	return InitCfgString(string(data))
}

// InitCfgString 解析 toml 格式的配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode toml")
	}
	fillDefault(&cfg)
	sub, err := parseSubModule(&cfg)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, sub, nil
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "state"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = MemDBBackendStr
	}
	if cfg.Store.DbCache <= 0 {
		cfg.Store.DbCache = 128
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
}

func parseSubModule(cfg *Config) (*ConfigSubModule, error) {
	sub := &ConfigSubModule{Exec: make(map[string][]byte)}
	for name, value := range cfg.Exec.Sub {
		data, err := json.Marshal(value)
		if err != nil {
			return nil, errors.Wrapf(err, "exec.sub.%s", name)
		}
		sub.Exec[name] = data
	}
	return sub, nil
}

// MustDecode json 解码, 出错时 panic
func MustDecode(data []byte, v interface{}) {
	if data == nil {
		return
	}
	err := json.Unmarshal(data, v)
	if err != nil {
		panic(err)
	}
}
