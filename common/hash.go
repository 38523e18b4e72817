// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package common 哈希以及十六进制编码
package common

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// Keccak256Len keccak256 哈希长度
const Keccak256Len = 32

// Keccak256 计算多段数据拼接后的 keccak256 哈希
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// ToHex []byte -> hex
func ToHex(b []byte) string {
	// Prefer output of "" instead of "0x"
	if len(b) == 0 {
		return ""
	}
	return hexutil.Encode(b)
}

// FromHex hex -> []byte, 0x 前缀可以省略
func FromHex(s string) ([]byte, error) {
	if s == "" || s == "0x" || s == "0X" {
		return []byte{}, nil
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
