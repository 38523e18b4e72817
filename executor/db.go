// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	"github.com/33cn/dice/common/db"
	"github.com/33cn/dice/types"
)

// StateDB 交易执行时使用的状态数据库
// 写入先进入内存, 只有交易成功后才会一次性写入底层数据库
// value 为 nil 表示删除
type StateDB struct {
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
	backend db.KV
}

// NewStateDB new state db
func NewStateDB(backend db.KV) *StateDB {
	return &StateDB{
		cache:   make(map[string][]byte),
		txcache: make(map[string][]byte),
		backend: backend,
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit canche tx
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return notDeleted(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return notDeleted(value)
	}
	if s.backend == nil {
		return nil, types.ErrNotFound
	}
	value, err := s.backend.Get(key)
	if err != nil || value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

func notDeleted(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// GetSetKeys  get state db set keys
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// Set set key value to state db
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// WriteTo 把已经提交的数据写入 batch, 写入顺序按照 key 排序
func (s *StateDB) WriteTo(batch db.Batch) {
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := s.cache[k]
		if v == nil {
			batch.Delete([]byte(k))
			continue
		}
		batch.Set([]byte(k), v)
	}
}
