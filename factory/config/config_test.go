package config_test

import (
	"testing"

	ap "github.com/cordialsys/address-parser"
	factoryconfig "github.com/cordialsys/address-parser/factory/config"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTokenUnmarshal(t *testing.T) {
	require := require.New(t)
	var cfg factoryconfig.Config
	err := yaml.Unmarshal([]byte(`
network: mainnet
tokens:
  ai3:
    token: AI3
    driver: substrate
    chain_prefix: 6094
    description: Autonomys
  iron:
    disabled: true
  dot:
    driver: substrate
    network: polkadot
`), &cfg)
	require.NoError(err)
	cfg.MigrateFields()

	tokens := cfg.GetTokens()
	require.Len(tokens, 3)
	require.Equal(ap.AI3, tokens[0].Token)
	require.Equal(ap.Token("DOT"), tokens[1].Token)
	require.Equal(ap.IRON, tokens[2].Token)

	ai3 := cfg.Tokens["ai3"]
	require.Equal(ap.DriverSubstrate, ai3.Driver)
	require.Equal("mainnet", ai3.Network)
	require.NotNil(ai3.ChainPrefix)
	require.EqualValues(6094, *ai3.ChainPrefix)
	require.False(ai3.IsDisabled())

	iron := cfg.Tokens["iron"]
	require.Equal(ap.DriverIronfish, iron.Driver)
	require.True(iron.IsDisabled())

	dot := cfg.Tokens["dot"]
	require.Equal(ap.DriverSubstrate, dot.Driver)
	require.Equal("polkadot", dot.Network)
}

func TestEmptyEntry(t *testing.T) {
	require := require.New(t)
	cfg := factoryconfig.Config{
		Network: "mainnet",
		Tokens: map[string]*ap.TokenConfig{
			"qubic": nil,
		},
	}
	cfg.MigrateFields()
	require.Equal(ap.QUBIC, cfg.Tokens["qubic"].Token)
	require.Equal(ap.DriverQubic, cfg.Tokens["qubic"].Driver)
	require.Equal("mainnet", cfg.Tokens["qubic"].Network)
}

func TestClone(t *testing.T) {
	require := require.New(t)
	disabled := true
	cfg := &factoryconfig.Config{
		Network: "mainnet",
		Tokens: map[string]*ap.TokenConfig{
			"ai3":  ap.NewTokenConfig(ap.AI3).WithChainPrefix(6094),
			"iron": {Token: ap.IRON, Driver: ap.DriverIronfish, Disabled: &disabled},
		},
	}
	clone, err := cfg.Clone()
	require.NoError(err)
	require.Equal(cfg, clone)

	*clone.Tokens["ai3"].ChainPrefix = 42
	*clone.Tokens["iron"].Disabled = false
	clone.Tokens["qubic"] = ap.NewTokenConfig(ap.QUBIC)

	require.EqualValues(6094, *cfg.Tokens["ai3"].ChainPrefix)
	require.True(cfg.Tokens["iron"].IsDisabled())
	require.Len(cfg.Tokens, 2)
}
