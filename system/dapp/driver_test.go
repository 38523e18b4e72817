// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"testing"

	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoApp struct {
	DriverBase
}

func newdemoApp() Driver {
	demo := &demoApp{}
	demo.SetChild(demo)
	return demo
}

func (none *demoApp) GetDriverName() string {
	return "demo"
}

func TestRegisterAndLoad(t *testing.T) {
	Register("demo", newdemoApp)
	assert.Panics(t, func() { Register("demo", newdemoApp) })
	assert.Panics(t, func() { Register("demo2", nil) })

	d, err := LoadDriver("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", d.GetName())
	d.SetName("demo.alias")
	assert.Equal(t, "demo.alias", d.GetName())

	_, err = LoadDriver("nothing")
	assert.Equal(t, types.ErrUnRegistedDriver, err)

	assert.True(t, IsDriverAddress(ExecAddress("demo")))
	assert.NoError(t, CheckAddress(ExecAddress("demo")))
	assert.NoError(t, CheckAddress(address.PubKeyToAddress([]byte("pub"))))
	assert.Error(t, CheckAddress("not an address"))
}

func TestDriverBaseWithoutType(t *testing.T) {
	d := newdemoApp()
	mdb, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	d.SetStateDB(mdb)
	d.SetEnv(10, 1000)
	assert.NotNil(t, d.GetCoinsAccount())
	assert.Equal(t, int64(1000), d.(*demoApp).GetBlockTime())
	assert.Equal(t, int64(10), d.(*demoApp).GetHeight())

	tx := &types.Transaction{Execer: []byte("demo"), To: ExecAddress("demo")}
	assert.NoError(t, d.CheckTx(tx, 0))
	tx.To = ExecAddress("other")
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, d.CheckTx(tx, 0))

	_, err = d.Exec(tx, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
	_, err = d.Query("GetSomething", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
	assert.Equal(t, "unknown", d.GetActionName(tx))
	assert.Nil(t, d.GetPayloadValue())
}
