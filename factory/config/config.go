package config

import (
	"maps"
	"slices"
	"sort"
	"strings"

	ap "github.com/cordialsys/address-parser"
	"gopkg.in/yaml.v3"
)

// Config is the full config containing all tokens
type Config struct {
	// which network the token table describes, e.g. "mainnet"
	Network string `yaml:"network,omitempty"`

	// map of lowercase(token) -> TokenConfig
	Tokens map[string]*ap.TokenConfig `yaml:"tokens,omitempty"`
}

// MigrateFields fills in fields that may be left implicit in yaml.
// Keys are lowercased by viper, so a missing token field falls back to the upper-cased key.
func (cfg *Config) MigrateFields() {
	for key, token := range cfg.Tokens {
		if token == nil {
			token = &ap.TokenConfig{}
			cfg.Tokens[key] = token
		}
		if token.Token == "" {
			token.Token = ap.Token(strings.ToUpper(key))
		}
		if token.Driver == "" {
			token.Driver = token.Token.Driver()
		}
		if token.Network == "" {
			token.Network = cfg.Network
		}
	}
}

// GetTokens returns every configured token, sorted by token
func (cfg *Config) GetTokens() []*ap.TokenConfig {
	slice := slices.Collect(maps.Values(cfg.Tokens))
	sort.Slice(slice, func(i, j int) bool {
		// need to be sorted deterministically
		return slice[i].Token < slice[j].Token
	})
	return slice
}

// Clone returns a deep copy, so the copy's token entries can be changed freely.
func (cfg *Config) Clone() (*Config, error) {
	bz, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	clone := &Config{}
	if err := yaml.Unmarshal(bz, clone); err != nil {
		return nil, err
	}
	return clone, nil
}
