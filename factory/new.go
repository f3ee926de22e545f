package factory

import (
	"fmt"

	ap "github.com/cordialsys/address-parser"
	"github.com/cordialsys/address-parser/config"
	factoryconfig "github.com/cordialsys/address-parser/factory/config"
	"github.com/cordialsys/address-parser/factory/defaults"
	"github.com/cordialsys/address-parser/factory/drivers"
	"github.com/sirupsen/logrus"
)

// Section of config.yaml the token table is read from
const ConfigSection = "address_parser"

type FactoryOptions struct {
	// include tokens that have been marked disabled
	UseDisabledTokens bool
	// read this config file instead of searching for config.yaml
	ConfigPath string
}

// NewFactory loads the token table from config.yaml, merged on top of the embedded defaults.
func NewFactory(options *FactoryOptions) (*Factory, error) {
	if options == nil {
		options = &FactoryOptions{}
	}
	cfg := factoryconfig.Config{}
	var err error
	if options.ConfigPath != "" {
		err = config.RequireConfigFile(options.ConfigPath, ConfigSection, &cfg, defaults.Mainnet)
	} else {
		err = config.RequireConfig(ConfigSection, &cfg, defaults.Mainnet)
	}
	if err != nil {
		return nil, err
	}
	return NewFactoryWithConfig(&cfg, options)
}

// NewDefaultFactory creates a Factory from the embedded token table only.
// Each Factory gets its own copy of the table.
func NewDefaultFactory() *Factory {
	cfg, err := defaults.Mainnet.Clone()
	if err != nil {
		panic(err)
	}
	f, err := NewFactoryWithConfig(cfg, nil)
	if err != nil {
		panic(err)
	}
	return f
}

// NewFactoryWithConfig builds one validator per enabled token
func NewFactoryWithConfig(cfg *factoryconfig.Config, options *FactoryOptions) (*Factory, error) {
	if options == nil {
		options = &FactoryOptions{}
	}
	cfg.MigrateFields()

	factory := &Factory{
		Config:     cfg,
		tokens:     map[ap.Token]*ap.TokenConfig{},
		validators: map[ap.Token]ap.AddressValidator{},
	}
	for _, token := range cfg.GetTokens() {
		if token.IsDisabled() && !options.UseDisabledTokens {
			logrus.WithField("token", token.Token).Debug("skipping disabled token")
			continue
		}
		if err := drivers.ValidateConfig(token); err != nil {
			return nil, err
		}
		if _, ok := factory.tokens[token.Token]; ok {
			return nil, fmt.Errorf("multiple entries for token %s", token.Token)
		}
		validator, err := drivers.NewAddressValidator(token)
		if err != nil {
			return nil, err
		}
		factory.tokens[token.Token] = token
		factory.validators[token.Token] = validator
	}
	return factory, nil
}

// NewFactoryWithValidators creates a Factory from prebuilt validators
func NewFactoryWithValidators(validators map[ap.Token]ap.AddressValidator) *Factory {
	factory := &Factory{
		Config:     &factoryconfig.Config{},
		tokens:     map[ap.Token]*ap.TokenConfig{},
		validators: map[ap.Token]ap.AddressValidator{},
	}
	for token, validator := range validators {
		factory.tokens[token] = &ap.TokenConfig{Token: token, Driver: token.Driver()}
		factory.validators[token] = validator
	}
	return factory
}
