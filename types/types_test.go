// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAmount(t *testing.T) {
	assert.False(t, CheckAmount(0))
	assert.False(t, CheckAmount(-1))
	assert.False(t, CheckAmount(MaxCoin))
	assert.True(t, CheckAmount(1))
	assert.True(t, CheckAmount(MaxCoin-1))
}

func TestAmount(t *testing.T) {
	cases := []struct {
		display string
		amount  int64
	}{
		{"0.004", 400000},
		{"1", Coin},
		{"0.00000001", 1},
		{"12.5", 1250000000},
		{"0", 0},
	}
	for _, c := range cases {
		amount, err := ParseAmount(c.display)
		require.NoError(t, err, c.display)
		assert.Equal(t, c.amount, amount, c.display)
		assert.Equal(t, c.display, FormatAmount(amount))
	}
	for _, bad := range []string{"", "abc", "0.000000001", "-1", "1000000000"} {
		_, err := ParseAmount(bad)
		assert.Error(t, err, bad)
	}
}

func TestMergeReceipt(t *testing.T) {
	r1 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("a")}}, Logs: []*ReceiptLog{{Ty: TyLogTransfer}}}
	r2 := &Receipt{Ty: ExecOk, KV: []*KeyValue{{Key: []byte("b")}}, Logs: []*ReceiptLog{{Ty: TyLogDeposit}}}
	assert.Equal(t, r2, MergeReceipt(nil, r2))
	r := MergeReceipt(r1, r2)
	assert.Len(t, r.KV, 2)
	assert.Equal(t, []byte("b"), r.KV[1].Key)
	assert.Equal(t, int32(TyLogDeposit), r.Logs[1].Ty)
	assert.Equal(t, r1, MergeReceipt(r1, nil))

	e := NewErrReceipt(errors.New("boom"))
	assert.Equal(t, int32(ExecErr), e.Ty)
	assert.Equal(t, []byte("boom"), e.Logs[0].Log)
}

func TestTxHash(t *testing.T) {
	tx := &Transaction{Execer: []byte("dice"), Payload: []byte{1}, From: "a"}
	h := tx.Hash()
	assert.Len(t, h, 32)
	tx2 := Clone(tx).(*Transaction)
	assert.Equal(t, h, tx2.Hash())
	tx2.Nonce = 1
	assert.NotEqual(t, h, tx2.Hash())

	var tx3 Transaction
	require.NoError(t, Decode(Encode(tx), &tx3))
	assert.Equal(t, tx.Execer, tx3.Execer)
	assert.Equal(t, Size(tx), len(Encode(tx)))
}

func TestCloneAccount(t *testing.T) {
	acc := &Account{Balance: 10, Frozen: 2, Addr: "a"}
	c := CloneAccount(acc)
	acc.Balance = 1
	assert.Equal(t, int64(10), c.Balance)
	assert.Equal(t, int64(2), c.Frozen)
	assert.Equal(t, "a", c.Addr)
}

func TestMessageDescriptor(t *testing.T) {
	d := (&Transaction{}).ProtoReflect().Descriptor()
	assert.Equal(t, "types.Transaction", string(d.FullName()))
	assert.Equal(t, 5, d.Fields().Len())
	assert.Equal(t, "from", string(d.Fields().ByNumber(5).Name()))

	kv := (&Receipt{}).ProtoReflect().Descriptor().Fields().ByName("KV")
	require.NotNil(t, kv)
	assert.True(t, kv.IsList())
	assert.Equal(t, "types.KeyValue", string(kv.Message().FullName()))

	r := &ReceiptAccountTransfer{Prev: &Account{Balance: 1}, Current: &Account{Balance: 2}}
	var r2 ReceiptAccountTransfer
	require.NoError(t, Decode(Encode(r), &r2))
	assert.Equal(t, int64(2), r2.GetCurrent().GetBalance())
}
