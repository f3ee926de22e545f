package substrate

import (
	ap "github.com/cordialsys/address-parser"
	"github.com/cordialsys/address-parser/chain/substrate/address"
	"github.com/sirupsen/logrus"
)

// ValidateAddress accepts any SS58 address with a non-reserved format and a valid checksum.
func ValidateAddress(cfg *ap.TokenConfig, addr ap.Address) error {
	format, _, err := address.DecodeWithFormat(string(addr))
	if err != nil {
		return err
	}
	if cfg.ChainPrefix != nil && address.Format(*cfg.ChainPrefix) != format {
		logrus.WithFields(logrus.Fields{
			"token":    cfg.Token,
			"format":   format,
			"expected": *cfg.ChainPrefix,
		}).Debug("address uses a different ss58 format than the token")
	}
	return nil
}
