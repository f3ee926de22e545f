package drivers

import (
	"fmt"

	ap "github.com/cordialsys/address-parser"
	"github.com/cordialsys/address-parser/chain/aleo"
	"github.com/cordialsys/address-parser/chain/ironfish"
	"github.com/cordialsys/address-parser/chain/qubic"
	"github.com/cordialsys/address-parser/chain/substrate"
)

type validateFunc func(cfg *ap.TokenConfig, addr ap.Address) error

func validatorFor(driver ap.Driver) (validateFunc, bool) {
	switch driver {
	case ap.DriverSubstrate:
		return substrate.ValidateAddress, true
	case ap.DriverAleo:
		return aleo.ValidateAddress, true
	case ap.DriverIronfish:
		return ironfish.ValidateAddress, true
	case ap.DriverQubic:
		return qubic.ValidateAddress, true
	}
	return nil, false
}

// NewAddressValidator binds the token config to its driver's validation function.
func NewAddressValidator(cfg *ap.TokenConfig) (ap.AddressValidator, error) {
	validate, ok := validatorFor(cfg.Driver)
	if !ok {
		return nil, fmt.Errorf("no address validator defined for token %s with driver '%s'", cfg.Token, cfg.Driver)
	}
	return ap.AddressValidatorFunc(func(address ap.Address) error {
		return validate(cfg, address)
	}), nil
}

// ValidateConfig checks a token entry is complete enough to build a validator.
func ValidateConfig(cfg *ap.TokenConfig) error {
	if cfg.Token == "" {
		return fmt.Errorf("token configuration entry has no token set")
	}
	if !cfg.Driver.Valid() {
		return fmt.Errorf("token %s driver '%s' is invalid, options: %v", cfg.Token, cfg.Driver, ap.SupportedDrivers)
	}
	if cfg.ChainPrefix != nil && cfg.Driver != ap.DriverSubstrate {
		return fmt.Errorf("token %s sets chain_prefix, which only applies to the %s driver", cfg.Token, ap.DriverSubstrate)
	}
	return nil
}
