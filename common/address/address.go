// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 以太坊格式的地址, 统一采用小写格式
package address

import (
	"errors"
	"strings"

	"github.com/33cn/dice/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache
var checkAddressCache *lru.Cache

// ErrInvalidEthAddr invalid ethereum address
var ErrInvalidEthAddr = errors.New("ErrInvalidEthAddr")

// MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

func init() {
	var err error
	addressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
	checkAddressCache, err = lru.New(10240)
	if err != nil {
		panic(err)
	}
}

// ExecPubKey 执行器没有私钥, 用名称生成一个固定的公钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	return common.Keccak256(buf)
}

// ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(ExecPubKey(name))
	addressCache.Add(name, addr)
	return addr
}

// PubKeyToAddress 取公钥哈希的后 20 字节作为地址
func PubKeyToAddress(pubKey []byte) string {
	return FormatAddr(ethcommon.BytesToAddress(common.Keccak256(pubKey)).Hex())
}

// CheckAddress 检查地址
func CheckAddress(addr string) error {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	var e error
	if !ethcommon.IsHexAddress(addr) {
		e = ErrInvalidEthAddr
	}
	checkAddressCache.Add(addr, e)
	return e
}

// FormatAddr 地址统一为小写格式
func FormatAddr(addr string) string {
	return strings.ToLower(addr)
}
