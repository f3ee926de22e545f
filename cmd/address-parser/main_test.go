package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/cordialsys/address-parser/config/constants"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Setenv(constants.ConfigEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	cmd := CmdAddressParser()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "validate", "AI3", "sudP7gCmjbUHTCezsHPSzEUfcWkCAe3d7fa3FYRSn3z3tqSHP")
	require.NoError(err)
	require.Equal("true\n", out)

	_, err = run(t, "validate", "AI3", "sudP7gCmjbUHTCezsHPSzEUfcWkCAe3d7fa3FYRSn3z3tqSHQ")
	require.EqualError(err, "invalid checksum")

	_, err = run(t, "validate", "ai3", "sudP7gCmjbUHTCezsHPSzEUfcWkCAe3d7fa3FYRSn3z3tqSHP")
	require.EqualError(err, "Unknown token used")

	_, err = run(t, "validate", "AI3")
	require.Error(err)
}

func TestTokensCommand(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "tokens")
	require.NoError(err)
	var asYaml []map[string]any
	require.NoError(yaml.Unmarshal([]byte(out), &asYaml))
	require.Len(asYaml, 4)
	require.Equal("AI3", asYaml[0]["token"])
	require.Equal("substrate", asYaml[0]["driver"])
	require.EqualValues(6094, asYaml[0]["chain_prefix"])

	out, err = run(t, "tokens", "--format", "json")
	require.NoError(err)
	var asJson []map[string]any
	require.NoError(json.Unmarshal([]byte(out), &asJson))
	require.Len(asJson, 4)
	require.Equal("QUBIC", asJson[3]["token"])

	_, err = run(t, "tokens", "--format", "toml")
	require.ErrorContains(err, "invalid format")
}

func TestInspectCommand(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "inspect", "sudP7gCmjbUHTCezsHPSzEUfcWkCAe3d7fa3FYRSn3z3tqSHP")
	require.NoError(err)
	var result map[string]any
	require.NoError(yaml.Unmarshal([]byte(out), &result))
	require.EqualValues(6094, result["format"])
	require.Equal("autonomys", result["format_name"])
	require.Equal("6639296318fed18fbfbb847e018e5b4207bdb12bfb912ad9151947214ef87d59", result["public_key"])
	require.Equal("0x6639296318fed18fbfbb847e018e5b4207bdb12bfb912ad9151947214ef87d59", result["account_id"])
	require.Equal("AI3", result["token"])

	out, err = run(t, "inspect", "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5")
	require.NoError(err)
	result = map[string]any{}
	require.NoError(yaml.Unmarshal([]byte(out), &result))
	require.EqualValues(0, result["format"])
	require.Equal("polkadot", result["format_name"])
	require.NotContains(result, "token")

	out, err = run(t, "inspect", "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", "--to-format", "42", "--format", "json")
	require.NoError(err)
	result = map[string]any{}
	require.NoError(json.Unmarshal([]byte(out), &result))
	require.Equal("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", result["converted"])

	_, err = run(t, "inspect", "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", "--to-format", "46")
	require.Error(err)

	out, err = run(t, "inspect", "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", "--to-format", "0")
	require.NoError(err)
	result = map[string]any{}
	require.NoError(yaml.Unmarshal([]byte(out), &result))
	require.Equal("15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", result["converted"])

	// formats outside 0..16383 must not wrap into a valid one
	for _, toFormat := range []string{"65578", "70000", "16384", "-5", "-1"} {
		out, err = run(t, "inspect", "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", "--to-format", toFormat)
		require.ErrorContains(err, "invalid --to-format", toFormat)
		require.Empty(out, toFormat)
	}

	_, err = run(t, "inspect", "not-an-address")
	require.Error(err)
}
