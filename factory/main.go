package factory

import (
	"slices"

	ap "github.com/cordialsys/address-parser"
	"github.com/cordialsys/address-parser/errors"
	"github.com/cordialsys/address-parser/factory/config"
	"github.com/sirupsen/logrus"
)

// FactoryContext is the main Factory interface
type FactoryContext interface {
	ValidateAddress(token string, address string) (bool, error)

	GetToken(token ap.Token) (*ap.TokenConfig, bool)
	GetAllTokens() []*ap.TokenConfig
	GetConfig() config.Config
}

// Factory holds the validator for every enabled token.
// It is never mutated after construction and is safe for concurrent use.
type Factory struct {
	Config     *config.Config
	tokens     map[ap.Token]*ap.TokenConfig
	validators map[ap.Token]ap.AddressValidator
}

var _ FactoryContext = &Factory{}

// ValidateAddress checks address against the validator configured for token.
// Token lookup is exact and case sensitive. Any validator failure is reported as
// errors.InvalidAddress carrying the validator's message.
func (f *Factory) ValidateAddress(token string, address string) (bool, error) {
	validator, ok := f.validators[ap.Token(token)]
	if !ok {
		return false, errors.UnknownTokenf("Unknown token used")
	}
	if err := validator.TryParse(ap.Address(address)); err != nil {
		logrus.WithFields(logrus.Fields{
			"token": token,
			"error": err,
		}).Debug("invalid address")
		return false, errors.InvalidAddressf("%s", err.Error())
	}
	return true, nil
}

func (f *Factory) GetToken(token ap.Token) (*ap.TokenConfig, bool) {
	cfg, ok := f.tokens[token]
	return cfg, ok
}

// GetAllTokens returns the enabled tokens, sorted
func (f *Factory) GetAllTokens() []*ap.TokenConfig {
	tokens := make([]*ap.TokenConfig, 0, len(f.tokens))
	for _, cfg := range f.tokens {
		tokens = append(tokens, cfg)
	}
	slices.SortFunc(tokens, func(a, b *ap.TokenConfig) int {
		if a.Token < b.Token {
			return -1
		}
		if a.Token > b.Token {
			return 1
		}
		return 0
	})
	return tokens
}

func (f *Factory) GetConfig() config.Config {
	if f.Config == nil {
		return config.Config{}
	}
	return *f.Config
}
