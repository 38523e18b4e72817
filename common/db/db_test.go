// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/33cn/dice/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDBs(t *testing.T) map[string]DB {
	dbs := make(map[string]DB)
	for _, backend := range []string{types.MemDBBackendStr, types.GoLevelDBBackendStr, types.GoBadgerDBBackendStr} {
		d, err := NewDB("test", backend, t.TempDir(), 16)
		require.NoError(t, err)
		t.Cleanup(d.Close)
		dbs[backend] = d
	}
	return dbs
}

func TestNewDBUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "nosuchdb", t.TempDir(), 16)
	assert.Error(t, err)
}

func TestGetSetDelete(t *testing.T) {
	for name, d := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			_, err := d.Get([]byte("k1"))
			assert.Equal(t, ErrNotFoundInDb, err)

			require.NoError(t, d.Set([]byte("k1"), []byte("v1")))
			v, err := d.Get([]byte("k1"))
			require.NoError(t, err)
			assert.Equal(t, []byte("v1"), v)

			require.NoError(t, d.SetSync([]byte("k2"), []byte("v2")))
			require.NoError(t, d.Set([]byte("k1"), nil))
			_, err = d.Get([]byte("k1"))
			assert.Equal(t, ErrNotFoundInDb, err)

			require.NoError(t, d.DeleteSync([]byte("k2")))
			_, err = d.Get([]byte("k2"))
			assert.Equal(t, ErrNotFoundInDb, err)
		})
	}
}

func TestBatch(t *testing.T) {
	for name, d := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, d.Set([]byte("old"), []byte("x")))

			batch := d.NewBatch(true)
			batch.Set([]byte("a"), []byte("1"))
			batch.Set([]byte("b"), []byte("22"))
			batch.Delete([]byte("old"))
			assert.Equal(t, 4, batch.ValueSize())

			// 写入之前不可见
			_, err := d.Get([]byte("a"))
			assert.Equal(t, ErrNotFoundInDb, err)

			require.NoError(t, batch.Write())
			v, err := d.Get([]byte("b"))
			require.NoError(t, err)
			assert.Equal(t, []byte("22"), v)
			_, err = d.Get([]byte("old"))
			assert.Equal(t, ErrNotFoundInDb, err)

			batch.Reset()
			assert.Equal(t, 0, batch.ValueSize())
		})
	}
}

func TestPrefixScan(t *testing.T) {
	for name, d := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, d.Set([]byte("p-2"), []byte("2")))
			require.NoError(t, d.Set([]byte("p-1"), []byte("1")))
			require.NoError(t, d.Set([]byte("q-1"), []byte("3")))

			values, err := d.PrefixScan([]byte("p-"))
			require.NoError(t, err)
			assert.Equal(t, [][]byte{[]byte("1"), []byte("2")}, values)
		})
	}
}

func TestMemDBCopy(t *testing.T) {
	d, err := NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	value := []byte("value")
	require.NoError(t, d.Set([]byte("k"), value))
	value[0] = 'X'
	v, err := d.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), v)
}
