package ironfish

import (
	ap "github.com/cordialsys/address-parser"
	"github.com/cordialsys/address-parser/chain/ironfish/address"
)

func ValidateAddress(cfg *ap.TokenConfig, addr ap.Address) error {
	_, err := address.Decode(string(addr))
	return err
}
