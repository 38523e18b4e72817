// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	// keccak256("") 常量
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", ToHex(Keccak256()))
	assert.Equal(t, ToHex(Keccak256([]byte("abc"))), ToHex(Keccak256([]byte("a"), []byte("bc"))))
	assert.Len(t, Keccak256([]byte("dice")), Keccak256Len)
}

func TestHex(t *testing.T) {
	b, err := FromHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0xff}, b)

	b, err = FromHex("0102ff")
	require.NoError(t, err)
	assert.Equal(t, "0x0102ff", ToHex(b))

	b, err = FromHex("")
	require.NoError(t, err)
	assert.Empty(t, b)
	assert.Equal(t, "", ToHex(nil))

	_, err = FromHex("0x123")
	assert.Error(t, err)
	_, err = FromHex("zz")
	assert.Error(t, err)
}
