// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
)

var (
	commitPrefix = "mavl-" + dty.DiceX + "-commit-"
	prizePoolKey = []byte("mavl-" + dty.DiceX + "-prizepool")
)

// commitKey 每个地址最多一个未揭晓的押注
func commitKey(addr string) (key []byte) {
	key = append(key, []byte(commitPrefix)...)
	key = append(key, []byte(addr)...)
	return key
}
