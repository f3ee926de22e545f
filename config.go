package addressparser

import "fmt"

// TokenConfig describes one token the service accepts addresses for.
type TokenConfig struct {
	// The token identifier callers pass, matched exactly
	Token Token `yaml:"token,omitempty"`
	// The driver that parses addresses for the token
	Driver Driver `yaml:"driver,omitempty"`
	// The network the address format belongs to (e.g. mainnet)
	Network string `yaml:"network,omitempty"`
	// Human readable name, e.g. "Autonomys"
	Description string `yaml:"description,omitempty"`

	// The address format a chain registers for itself, if the encoding carries one.
	// E.g. SS58 format 6094 for Autonomys.
	// Addresses in other formats are still accepted.
	ChainPrefix *uint16 `yaml:"chain_prefix,omitempty"`

	// Indicate if this token should not be included.
	Disabled *bool `yaml:"disabled,omitempty"`
}

func NewTokenConfig(token Token) *TokenConfig {
	return &TokenConfig{
		Token:  token,
		Driver: token.Driver(),
	}
}

func (cfg *TokenConfig) WithDriver(driver Driver) *TokenConfig {
	cfg.Driver = driver
	return cfg
}

func (cfg *TokenConfig) WithNetwork(network string) *TokenConfig {
	cfg.Network = network
	return cfg
}

func (cfg *TokenConfig) WithChainPrefix(prefix uint16) *TokenConfig {
	cfg.ChainPrefix = &prefix
	return cfg
}

func (cfg *TokenConfig) IsDisabled() bool {
	return cfg.Disabled != nil && *cfg.Disabled
}

func (cfg *TokenConfig) String() string {
	return fmt.Sprintf("%s (%s)", cfg.Token, cfg.Driver)
}
