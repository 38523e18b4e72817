// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 状态数据库接口以及 memdb, goleveldb, gobadgerdb 三种实现
package db

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV 执行器看到的状态数据库
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// DB 底层存储
type DB interface {
	KV
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	PrefixScan(prefix []byte) ([][]byte, error)
}

// Batch 批量写入, Write 之前不会对 DB 产生影响
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

type dbCreator func(name string, dir string, cache int) (DB, error)

var (
	backendsMu sync.RWMutex
	backends   = map[string]dbCreator{}
)

func registerDBCreator(backend string, creator dbCreator, force bool) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 按照 backend 名称创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	backendsMu.RLock()
	creator, ok := backends[backend]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown db backend %q", backend)
	}
	return creator(name, dir, int(cache))
}

// CopyBytes 拷贝
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}
