package qubic

import (
	ap "github.com/cordialsys/address-parser"
	"github.com/cordialsys/address-parser/chain/qubic/address"
)

func ValidateAddress(cfg *ap.TokenConfig, addr ap.Address) error {
	_, err := address.Decode(string(addr))
	return err
}
