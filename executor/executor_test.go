// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"testing"

	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	drivers "github.com/33cn/dice/system/dapp"
	"github.com/33cn/dice/types"
	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kvExecer = "kvtest"

var errKvFail = errors.New("ErrKvFail")

// kvApp 按照 payload 的内容执行不同的写入
type kvApp struct {
	drivers.DriverBase
}

func newKvApp() drivers.Driver {
	app := &kvApp{}
	app.SetChild(app)
	return app
}

func (app *kvApp) GetDriverName() string {
	return kvExecer
}

func (app *kvApp) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	db := app.GetStateDB()
	key := []byte("mavl-kvtest-" + tx.From)
	value := []byte(string(tx.Payload))
	switch string(tx.Payload) {
	case "ok":
		db.Set(key, value)
		return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: key, Value: value}}}, nil
	case "memset":
		db.Set(key, value)
		return &types.Receipt{Ty: types.ExecOk}, nil
	case "foreign":
		other := []byte("mavl-other-" + tx.From)
		db.Set(other, value)
		return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: other, Value: value}}}, nil
	case "empty":
		return nil, nil
	default:
		db.Set(key, value)
		return nil, errKvFail
	}
}

func init() {
	drivers.Register(kvExecer, newKvApp)
}

func newTestExecutor(t *testing.T) *Executor {
	db, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	exec, err := NewWithDB(db, nil)
	require.NoError(t, err)
	return exec
}

func kvTx(from, payload string) *types.Transaction {
	return &types.Transaction{
		Execer:  []byte(kvExecer),
		Payload: []byte(payload),
		To:      drivers.ExecAddress(kvExecer),
		From:    from,
	}
}

func TestExecuteRejected(t *testing.T) {
	exec := newTestExecutor(t)
	defer exec.Close()
	from := address.PubKeyToAddress([]byte("executor test"))
	key := []byte("mavl-kvtest-" + from)

	cases := []struct {
		payload string
		err     error
	}{
		{"memset", ErrNotAllowMemSetKey},
		{"foreign", ErrNotAllowKey},
		{"empty", ErrEmptyReceipt},
		{"fail", errKvFail},
	}
	for _, c := range cases {
		_, err := exec.Execute(kvTx(from, c.payload), 1)
		assert.Equal(t, c.err, err, c.payload)
		_, err = exec.db.Get(key)
		assert.Error(t, err, c.payload)
	}
	assert.Equal(t, int64(0), exec.Height())

	receipt, err := exec.Execute(kvTx(from, "ok"), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int64(1), exec.Height())
	v, err := exec.db.Get(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), v)

	// 失败的交易不影响已经写入的数据
	_, err = exec.Execute(kvTx(from, "fail"), 2)
	assert.Equal(t, errKvFail, err)
	v, _ = exec.db.Get(key)
	assert.Equal(t, []byte("ok"), v)
}

func TestExecuteBadTx(t *testing.T) {
	exec := newTestExecutor(t)
	defer exec.Close()
	from := address.PubKeyToAddress([]byte("executor test"))

	_, err := exec.Execute(nil, 1)
	assert.Equal(t, types.ErrEmptyTx, err)

	_, err = exec.Execute(kvTx("nobody", "ok"), 1)
	assert.Equal(t, types.ErrInvalidAddress, pkgerr.Cause(err))

	tx := kvTx(from, "ok")
	tx.Execer = []byte("unknown")
	_, err = exec.Execute(tx, 1)
	assert.Equal(t, types.ErrExecNotFound, pkgerr.Cause(err))

	tx = kvTx(from, "ok")
	tx.To = from
	_, err = exec.Execute(tx, 1)
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, err)
}

func TestFaucet(t *testing.T) {
	exec := newTestExecutor(t)
	defer exec.Close()
	addr := address.PubKeyToAddress([]byte("faucet"))

	_, err := exec.Faucet(addr, types.Coin)
	require.NoError(t, err)
	_, err = exec.Faucet(addr, types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 2*types.Coin, exec.GetBalance(addr).GetBalance())
	assert.Equal(t, int64(2), exec.Height())

	_, err = exec.Faucet(addr, -1)
	assert.Equal(t, types.ErrAmount, err)
	_, err = exec.Faucet("bad", 1)
	assert.Equal(t, types.ErrInvalidAddress, pkgerr.Cause(err))
	assert.Equal(t, int64(0), exec.GetExecBalance(addr, kvExecer).GetBalance())
}

func TestPersistAcrossReopen(t *testing.T) {
	for _, backend := range []string{types.GoLevelDBBackendStr, types.GoBadgerDBBackendStr} {
		t.Run(backend, func(t *testing.T) {
			testPersist(t, backend)
		})
	}
}

func testPersist(t *testing.T, backend string) {
	cfg, sub, err := types.InitCfgString(types.GetDefaultCfgstring())
	require.NoError(t, err)
	cfg.Store.Driver = backend
	cfg.Store.DbPath = t.TempDir()
	addr := address.PubKeyToAddress([]byte("persist"))

	exec, err := New(cfg, sub)
	require.NoError(t, err)
	_, err = exec.Faucet(addr, types.Coin)
	require.NoError(t, err)
	_, err = exec.Execute(kvTx(addr, "ok"), 1)
	require.NoError(t, err)
	exec.Close()

	exec, err = New(cfg, sub)
	require.NoError(t, err)
	defer exec.Close()
	assert.Equal(t, int64(2), exec.Height())
	assert.Equal(t, types.Coin, exec.GetBalance(addr).GetBalance())
	v, err := exec.db.Get([]byte("mavl-kvtest-" + addr))
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), v)
}

func TestUnknownBackend(t *testing.T) {
	cfg, sub, err := types.InitCfgString(types.GetDefaultCfgstring())
	require.NoError(t, err)
	cfg.Store.Driver = "nodriver"
	_, err = New(cfg, sub)
	assert.Equal(t, types.ErrDBBackend, pkgerr.Cause(err))
}
