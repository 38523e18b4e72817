// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg, sub, err := InitCfgString(GetDefaultCfgstring())
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, MemDBBackendStr, cfg.Store.Driver)
	assert.Equal(t, int32(64), cfg.Store.DbCache)
	assert.False(t, cfg.Metrics.EnableMetrics)
	assert.Equal(t, "localhost:9611", cfg.Metrics.ListenAddr)
	require.Contains(t, sub.Exec, "dice")
	assert.JSONEq(t, `{"requiredStake":400000,"revealWindow":3600,"digestPrefixLength":29,"outcomeModulus":6}`,
		string(sub.Exec["dice"]))
}

func TestConfigFillDefault(t *testing.T) {
	cfg, sub, err := InitCfgString(`title="t"`)
	require.NoError(t, err)
	assert.Equal(t, "t", cfg.Title)
	assert.Equal(t, "state", cfg.Store.Name)
	assert.Equal(t, MemDBBackendStr, cfg.Store.Driver)
	assert.Equal(t, int32(128), cfg.Store.DbCache)
	assert.NotNil(t, cfg.Log)
	assert.NotNil(t, cfg.Metrics)
	assert.Empty(t, sub.Exec)

	_, _, err = InitCfgString(`title=`)
	assert.Error(t, err)
}

func TestInitCfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dice.toml")
	require.NoError(t, os.WriteFile(path, []byte(GetDefaultCfgstring()), 0600))
	cfg, _, err := InitCfg(path)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)

	_, _, err = InitCfg(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
}
