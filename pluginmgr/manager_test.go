// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluginManager(t *testing.T) {
	var got []byte
	fail := false
	Register(&PluginBase{
		Name:     "test.plugin",
		ExecName: "testexec",
		Exec: func(name string, sub []byte) error {
			got = sub
			if fail {
				return errors.New("bad sub")
			}
			return nil
		},
		Cmd: func() *cobra.Command {
			return &cobra.Command{Use: "testexec"}
		},
	})
	assert.Panics(t, func() { Register(&PluginBase{Name: "test.plugin"}) })
	assert.Panics(t, func() { Register(&PluginBase{}) })
	assert.True(t, HasExec("testexec"))
	assert.False(t, HasExec("nothing"))

	require.NoError(t, InitExec(map[string][]byte{"testexec": []byte(`{"a":1}`)}))
	assert.Equal(t, `{"a":1}`, string(got))
	require.NoError(t, InitExec(nil))
	assert.Nil(t, got)

	fail = true
	assert.Error(t, InitExec(nil))

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	assert.Len(t, root.Commands(), 1)
}
