// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"path"

	"github.com/33cn/dice/types"
	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(types.GoBadgerDBBackendStr, dbCreator, false)
}

// badger 的日志输出到 log15
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, v ...interface{}) {
	blog.Error(fmt.Sprintf(format, v...))
}

func (badgerLogger) Warningf(format string, v ...interface{}) {
	blog.Warn(fmt.Sprintf(format, v...))
}

func (badgerLogger) Infof(format string, v ...interface{}) {
	blog.Debug(fmt.Sprintf(format, v...))
}

func (badgerLogger) Debugf(format string, v ...interface{}) {
	blog.Debug(fmt.Sprintf(format, v...))
}

// GoBadgerDB badger 持久化存储
type GoBadgerDB struct {
	db *badger.DB
}

// NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(badgerLogger{}).WithTruncate(true)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

// Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

// Set set, value 为 nil 时删除
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	if value == nil {
		return db.Delete(key)
	}
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, CopyBytes(value))
	})
}

// SetSync badger 默认 SyncWrites
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete delete
func (db *GoBadgerDB) Delete(key []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// DeleteSync delete
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// DB 底层 badger
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

// Close close
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

// PrefixScan 按 key 排序返回所有前缀匹配的 value
func (db *GoBadgerDB) PrefixScan(prefix []byte) ([][]byte, error) {
	var values [][]byte
	err := db.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// NewBatch new batch
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type badgerOp struct {
	key   []byte
	value []byte
}

// goBadgerDBBatch 在 Write 时用一个事务写入
type goBadgerDBBatch struct {
	db   *GoBadgerDB
	ops  []badgerOp
	size int
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	if value == nil {
		mBatch.Delete(key)
		return
	}
	mBatch.ops = append(mBatch.ops, badgerOp{key: CopyBytes(key), value: CopyBytes(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.ops = append(mBatch.ops, badgerOp{key: CopyBytes(key)})
	mBatch.size++
}

func (mBatch *goBadgerDBBatch) Write() error {
	return mBatch.db.db.Update(func(txn *badger.Txn) error {
		for _, op := range mBatch.ops {
			var err error
			if op.value == nil {
				err = txn.Delete(op.key)
			} else {
				err = txn.Set(op.key, op.value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.ops = nil
	mBatch.size = 0
}
