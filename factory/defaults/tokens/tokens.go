package tokens

import (
	_ "embed"

	ap "github.com/cordialsys/address-parser"
	"github.com/cordialsys/address-parser/factory/defaults/common"
)

//go:embed mainnet.yaml
var mainnetData string

var Mainnet map[string]*ap.TokenConfig

func init() {
	maincfg := common.Unmarshal(mainnetData)
	Mainnet = maincfg.Tokens
}
