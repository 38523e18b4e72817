// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/dice/common"
	"github.com/33cn/dice/common/address"
	"github.com/holiman/uint256"
)

// CommitDigest keccak256(secret || byte(guess)) 的前 prefixLen 个字节
func CommitDigest(secret []byte, guess int32, prefixLen int32) []byte {
	hash := common.Keccak256(secret, []byte{byte(guess)})
	return hash[:prefixLen]
}

// Roll 骰子结果只由 secret 决定
func Roll(secret []byte, modulus int32) int32 {
	v := new(uint256.Int).SetBytes(common.Keccak256(secret))
	v.Mod(v, uint256.NewInt(uint64(modulus)))
	return int32(v.Uint64())
}

// PrizePoolAddress 奖池资金所在的地址
func PrizePoolAddress() string {
	return address.ExecAddress(DiceX + ".prizepool")
}
