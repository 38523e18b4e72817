// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type T struct{}

func (t *T) Query_Add(in *ReqNil) (Message, error) {
	return &ReqString{Data: "add"}, nil
}

func TestListMethod(t *testing.T) {
	funcs := ListMethod(&T{})
	assert.Len(t, funcs, 1)
	f, ok := funcs["Query_Add"]
	assert.True(t, ok)
	ret := f.Func.Call([]reflect.Value{reflect.ValueOf(&T{}), reflect.ValueOf(&ReqNil{})})
	assert.True(t, IsOK(ret, 2))
	assert.False(t, IsOK(ret, 1))
	assert.Equal(t, "add", ret[0].Interface().(*ReqString).GetData())
	assert.True(t, IsNilVal(ret[1]))
	assert.False(t, IsNilVal(ret[0]))
	assert.True(t, IsNilVal(reflect.ValueOf(nil)))
}
