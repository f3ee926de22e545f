package common

import (
	"strings"

	ap "github.com/cordialsys/address-parser"
	"github.com/cordialsys/address-parser/factory/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// viper always lowercases the keys in maps, whereas unmarshaling "natively" preserves case.
// Lowercase here so defaults and config files merge on the same keys.
func lowercaseMap(list map[string]*ap.TokenConfig) map[string]*ap.TokenConfig {
	toMap := map[string]*ap.TokenConfig{}
	for _, item := range list {
		key := strings.ToLower(string(item.Token))
		if _, ok := toMap[key]; ok {
			logrus.Warnf("multiple entries for %s", key)
		}
		toMap[key] = item
	}
	return toMap
}

func Unmarshal(data string) *config.Config {
	cfg := &config.Config{}
	err := yaml.Unmarshal([]byte(data), cfg)
	if err != nil {
		panic(err)
	}
	cfg.MigrateFields()
	cfg.Tokens = lowercaseMap(cfg.Tokens)

	return cfg
}
