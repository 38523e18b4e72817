// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/dice/types"
)

var mavlPrefix = []byte("mavl-")

// findExecer mavl-<execer>-xxx
func findExecer(key []byte) ([]byte, bool) {
	if !bytes.HasPrefix(key, mavlPrefix) {
		return nil, false
	}
	rest := key[len(mavlPrefix):]
	i := bytes.IndexByte(rest, '-')
	if i <= 0 {
		return nil, false
	}
	return rest[:i], true
}

/*
权限控制规则:
1. 执行器只能修改执行器下面的 key
2. 资产数据只能通过 account 修改, 所以 coins 的 key 也允许写入
*/
func isAllowKeyWrite(key, execer []byte) bool {
	keyExecer, ok := findExecer(key)
	if !ok {
		elog.Error("find execer ", "key", string(key))
		return false
	}
	if bytes.Equal(keyExecer, execer) {
		return true
	}
	return bytes.Equal(keyExecer, []byte(types.ExecerCoins))
}

// checkKV 所有写入状态数据库的 key 都必须出现在 receipt 中
func checkKV(memset []string, kvs []*types.KeyValue) error {
	keys := make(map[string]bool)
	for _, kv := range kvs {
		keys[string(kv.GetKey())] = true
	}
	for _, key := range memset {
		if _, ok := keys[key]; !ok {
			elog.Error("err memset key", "key", key)
			return ErrNotAllowMemSetKey
		}
	}
	return nil
}

func checkKeyAllow(execer []byte, kvs []*types.KeyValue) error {
	for _, kv := range kvs {
		if !isAllowKeyWrite(kv.GetKey(), execer) {
			elog.Error("err receipt key", "key", string(kv.GetKey()), "tx.exec", string(execer))
			return ErrNotAllowKey
		}
	}
	return nil
}
