// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/golang/protobuf/proto"
)

// Message 所有链上数据都是 proto message, 定义在 types/proto 下
type Message proto.Message

// CloneAccount 复制账户, 用于回执中记录变化前的状态
func CloneAccount(acc *Account) *Account {
	return &Account{
		Currency: acc.GetCurrency(),
		Balance:  acc.GetBalance(),
		Frozen:   acc.GetFrozen(),
		Addr:     acc.GetAddr(),
	}
}
