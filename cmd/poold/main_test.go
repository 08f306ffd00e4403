package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lpstake/lpstake"
	"github.com/lpstake/lpstake/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	t    *testing.T
	home string
}

func (c cli) run(key string, args ...string) (string, error) {
	c.t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(ioutil.Discard)
	root.SetArgs(append([]string{"--home", c.home, "--key", key, "--log-level", "none"}, args...))
	err := root.Execute()
	return out.String(), err
}

func (c cli) mustJSON(key string, args ...string) map[string]interface{} {
	c.t.Helper()
	out, err := c.run(key, args...)
	require.NoError(c.t, err, strings.Join(args, " "))
	var res map[string]interface{}
	require.NoError(c.t, json.Unmarshal([]byte(out), &res), out)
	return res
}

func TestCommandLineFlow(t *testing.T) {
	home, err := ioutil.TempDir("", "poold")
	require.NoError(t, err)
	defer os.RemoveAll(home)
	c := cli{t: t, home: home}

	admin := c.mustJSON("admin", "keys", "new")["address"].(string)
	alice := c.mustJSON("alice", "keys", "new")
	aliceAddr := alice["address"].(string)
	assert.True(t, strings.HasPrefix(alice["bech32"].(string), "lp1"))
	assert.Equal(t, aliceAddr, c.mustJSON("alice", "keys", "show")["address"])

	_, err = c.run("alice", "keys", "new")
	assert.True(t, errors.ErrDuplicate.Is(err))

	genesis := fmt.Sprintf(`{
		"chain_id": "cli-test",
		"app_state": {
			"cash": [
				{"address": %q, "coins": ["5000 RWD"]},
				{"address": %q, "coins": ["1000 LPT"]}
			],
			"conf": {"pool": {"owner": %q, "ttl_threshold": 10, "ttl_bump": 100}}
		}
	}`, admin, aliceAddr, admin)
	genFile := filepath.Join(home, "genesis.json")
	require.NoError(t, ioutil.WriteFile(genFile, []byte(genesis), 0600))
	assert.Equal(t, "cli-test", c.mustJSON("admin", "init", genFile)["chain_id"])

	_, err = c.run("admin", "init", genFile)
	assert.True(t, errors.ErrDuplicate.Is(err))

	c.mustJSON("admin", "tx", "pool", "initialize", "--liquidity", "LPT", "--reward", "RWD", "--time", "900")
	c.mustJSON("admin", "tx", "pool", "fund", "--amount", "1000", "--duration", "100", "--time", "1000")
	c.mustJSON("alice", "tx", "pool", "deposit", "--amount", "100", "--time", "1000")

	_, err = c.run("alice", "tx", "pool", "fund", "--amount", "1", "--duration", "1", "--time", "1000")
	assert.True(t, errors.ErrUnauthorized.Is(err))

	pending := c.mustJSON("alice", "query", "pending", "--time", "1050")
	assert.Equal(t, float64(10), pending["pending"])

	claim := c.mustJSON("alice", "tx", "pool", "claim", "--time", "1050")
	assert.Equal(t, "10 RWD", claim["paid"])
	assert.Equal(t, "pool/claim", claim["path"])

	p := c.mustJSON("admin", "query", "pool")
	assert.Equal(t, float64(100), p["total_deposit"])
	assert.Equal(t, float64(10), p["reward_rate"])

	part := c.mustJSON("admin", "query", "participant", aliceAddr)
	assert.Equal(t, float64(100), part["deposit"])
	assert.Equal(t, float64(10), part["reward_debt"])

	c.mustJSON("alice", "tx", "cash", "send", "--to", admin, "--amount", "5 RWD", "--time", "1060")
	out, err := c.run("admin", "query", "balance")
	require.NoError(t, err)
	var balance struct {
		Coins []struct {
			Ticker string `json:"ticker"`
			Amount int64  `json:"amount"`
		} `json:"coins"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &balance))
	require.Len(t, balance.Coins, 1)
	assert.Equal(t, int64(4005), balance.Coins[0].Amount)

	_, err = c.run("alice", "tx", "pool", "withdraw", "--amount", "100", "--time", "1000")
	assert.True(t, errors.ErrInvalidState.Is(err), "clock cannot go backwards")
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, lpstake.Version()+"\n", out.String())
}
