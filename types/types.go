// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 链上基础数据结构, 配置以及编解码
package types

import (
	"github.com/33cn/dice/common"
	"github.com/golang/protobuf/proto"
)

// Encode  编码
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Size  消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

// Decode  解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

// Clone 深拷贝
func Clone(data proto.Message) proto.Message {
	return proto.Clone(data)
}

// NewErrReceipt  new一个新的Receipt
func NewErrReceipt(err error) *Receipt {
	berr := err.Error()
	errlog := &ReceiptLog{Ty: TyLogErr, Log: []byte(berr)}
	return &Receipt{Ty: ExecErr, KV: nil, Logs: []*ReceiptLog{errlog}}
}

// CheckAmount  检测转账金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

// MergeReceipt 合并两个回执, receipt2 的 KV 和 Logs 追加在 receipt1 之后
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt1 == nil {
		return receipt2
	}
	if receipt2 != nil {
		receipt1.KV = append(receipt1.KV, receipt2.KV...)
		receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	}
	return receipt1
}

// Hash 交易哈希
func (m *Transaction) Hash() []byte {
	return common.Keccak256(Encode(m))
}
