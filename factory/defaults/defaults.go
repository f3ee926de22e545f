package defaults

import (
	factoryconfig "github.com/cordialsys/address-parser/factory/config"
	"github.com/cordialsys/address-parser/factory/defaults/tokens"
)

var Mainnet = factoryconfig.Config{
	Network: "mainnet",
	Tokens:  tokens.Mainnet,
}
