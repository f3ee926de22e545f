package constants

import (
	"os"
	"path/filepath"
)

const DefaultHomeEnv string = "ADDRESS_PARSER_HOME"
const ConfigEnv string = "ADDRESS_PARSER_CONFIG"

var DefaultHome string

func init() {
	if home := os.Getenv(DefaultHomeEnv); home != "" {
		DefaultHome = home
		return
	}
	// ~/.address-parser default
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		DefaultHome = "/data"
	} else {
		DefaultHome = filepath.Join(userHomeDir, ".address-parser")
	}
}
