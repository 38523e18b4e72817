// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/33cn/dice/common"
	"github.com/33cn/dice/common/address"
	dbm "github.com/33cn/dice/common/db"
	"github.com/33cn/dice/executor"
	_ "github.com/33cn/dice/plugin/dapp/dice"
	"github.com/33cn/dice/plugin/dapp/dice/commands"
	dty "github.com/33cn/dice/plugin/dapp/dice/types"
	"github.com/33cn/dice/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string) {
	cmd := commands.DiceCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return strings.TrimSpace(out.String()), strings.TrimSpace(errOut.String())
}

func TestDigestCmd(t *testing.T) {
	out, _ := run(t, "digest", "-s", "hello dice", "-g", "3")
	assert.Equal(t, common.ToHex(dty.CommitDigest([]byte("hello dice"), 3, dty.DefaultDigestPrefixLength)), out)

	out, _ = run(t, "digest", "-s", "0x0102", "-g", "1", "-l", "8")
	assert.Equal(t, common.ToHex(dty.CommitDigest([]byte{1, 2}, 1, 8)), out)

	out, errOut := run(t, "digest", "-s", "x", "-l", "33")
	assert.Empty(t, out)
	assert.Contains(t, errOut, dty.ErrBadGameConfig.Error())
}

func TestCommitOnLevelDB(t *testing.T) {
	datadir := t.TempDir()
	addr := address.PubKeyToAddress([]byte("commands test player"))
	stake := types.FormatAmount(dty.DefaultRequiredStake)

	_, errOut := run(t, "--datadir", datadir, "faucet", "-a", addr, "-m", "1")
	require.Empty(t, errOut)

	d := common.ToHex(dty.CommitDigest([]byte("secret"), 2, dty.DefaultDigestPrefixLength))
	out, errOut := run(t, "--datadir", datadir, "commit", "-f", addr, "-d", d, "-a", stake, "-t", "1000")
	require.Empty(t, errOut)
	assert.Contains(t, out, "LogDiceCommit")

	// 数据保存在 leveldb 中, 重新打开之后仍然可以查到
	out, errOut = run(t, "--datadir", datadir, "commitment", "-a", addr)
	require.Empty(t, errOut)
	var c map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, addr, c["committer"])
	assert.Equal(t, d, c["digest"])
	assert.Equal(t, stake, c["stake"])

	_, errOut = run(t, "--datadir", datadir, "commit", "-f", addr, "-d", d, "-a", stake, "-t", "1001")
	assert.Contains(t, errOut, dty.ErrCommitmentAlreadyExists.Error())

	_, errOut = run(t, "--datadir", datadir, "reveal", "-f", addr, "-s", "secret", "-g", "2", "-t", "1002")
	require.Empty(t, errOut)
	_, errOut = run(t, "--datadir", datadir, "commitment", "-a", addr)
	assert.Contains(t, errOut, dty.ErrNoSuchCommitment.Error())

	out, errOut = run(t, "--datadir", datadir, "account", "-a", addr)
	require.Empty(t, errOut)
	var acc map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &acc))
	assert.Equal(t, "0", acc["diceFrozen"])
}

func TestSimulate(t *testing.T) {
	_, sub, err := types.InitCfgString(types.GetDefaultCfgstring())
	require.NoError(t, err)
	db, err := dbm.NewGoMemDB("simulate", "", 0)
	require.NoError(t, err)
	exec, err := executor.NewWithDB(db, sub)
	require.NoError(t, err)
	defer exec.Close()

	done := 0
	result, err := commands.Simulate(exec, 20, 3, 20, rand.New(rand.NewSource(7)), func() { done++ })
	require.NoError(t, err)
	assert.Equal(t, 20, done)
	assert.Equal(t, 60, result.Wins+result.Losses+result.Forfeits)
	assert.Equal(t, result.PrizePool, result.PoolFunds)
}

func TestSimulateBadParams(t *testing.T) {
	_, sub, err := types.InitCfgString(types.GetDefaultCfgstring())
	require.NoError(t, err)
	db, err := dbm.NewGoMemDB("simulate", "", 0)
	require.NoError(t, err)
	exec, err := executor.NewWithDB(db, sub)
	require.NoError(t, err)
	defer exec.Close()

	cases := []struct{ rounds, players, skip int }{
		{10, -1, 0},
		{10, 0, 0},
		{-1, 2, 0},
		{10, 2, 101},
	}
	for _, c := range cases {
		_, err := commands.Simulate(exec, c.rounds, c.players, c.skip, rand.New(rand.NewSource(1)), nil)
		assert.Equal(t, types.ErrInvalidParam, errors.Cause(err))
	}

	out, errOut := run(t, "simulate", "--players", "-3")
	assert.Empty(t, out)
	assert.Contains(t, errOut, types.ErrInvalidParam.Error())
}
