// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"math"

	"github.com/33cn/dice/common"
	"github.com/33cn/dice/types"
	"github.com/pkg/errors"
)

// 默认配置: 每注 0.004, 揭晓期限 1 小时, 六面骰子
const (
	DefaultRequiredStake      = types.Coin / 250
	DefaultRevealWindow       = int64(3600)
	DefaultDigestPrefixLength = int32(29)
	DefaultOutcomeModulus     = int32(6)

	// MaxOutcomeModulus guess 在摘要中只占一个字节
	MaxOutcomeModulus = int32(256)
)

// DefaultGameConfig 默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		RequiredStake:      DefaultRequiredStake,
		RevealWindow:       DefaultRevealWindow,
		DigestPrefixLength: DefaultDigestPrefixLength,
		OutcomeModulus:     DefaultOutcomeModulus,
	}
}

// ParseGameConfig 解析 [exec.sub.dice], 没有配置的字段使用默认值
func ParseGameConfig(sub []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, cfg); err != nil {
			return nil, errors.Wrapf(ErrBadGameConfig, "decode sub config: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置是否合法
func (m *GameConfig) Validate() error {
	if !types.CheckAmount(m.GetRequiredStake()) {
		return errors.Wrapf(ErrBadGameConfig, "requiredStake=%d", m.GetRequiredStake())
	}
	if m.GetRevealWindow() <= 0 {
		return errors.Wrapf(ErrBadGameConfig, "revealWindow=%d", m.GetRevealWindow())
	}
	if m.GetDigestPrefixLength() <= 0 || m.GetDigestPrefixLength() > common.Keccak256Len {
		return errors.Wrapf(ErrBadGameConfig, "digestPrefixLength=%d", m.GetDigestPrefixLength())
	}
	if m.GetOutcomeModulus() < 2 || m.GetOutcomeModulus() > MaxOutcomeModulus {
		return errors.Wrapf(ErrBadGameConfig, "outcomeModulus=%d", m.GetOutcomeModulus())
	}
	return nil
}

// RevealDeadline 最后一个可以揭晓的时间点, 之后只能被没收
// 溢出时取 math.MaxInt64, 这样的押注永远不能被没收
func (m *GameConfig) RevealDeadline(committedAt int64) int64 {
	if committedAt > math.MaxInt64-m.GetRevealWindow() {
		return math.MaxInt64
	}
	return committedAt + m.GetRevealWindow()
}
