package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// replaces reports whether an override value replaces the default at the same key.
// Scalars always do, including "", 0 and false, so config types mark every field
// "omitempty" and use pointers where a zero value is meaningful (disabled, chain_prefix).
// Empty lists and nulls leave the default in place.
func replaces(val interface{}) bool {
	switch v := val.(type) {
	case nil:
		return false
	case []interface{}:
		return len(v) > 0
	}
	return true
}

// MergeOverrides writes overrides into defaults. Maps merge key by key, so a
// config file entry for a default token only changes the fields it sets.
// A field present in the defaults cannot be unset by an override.
func MergeOverrides(defaults map[string]interface{}, overrides map[string]interface{}) error {
	return mergeAt("", defaults, overrides)
}

func mergeAt(path string, defaults map[string]interface{}, overrides map[string]interface{}) error {
	for key, val := range overrides {
		keyPath := key
		if path != "" {
			keyPath = path + "." + key
		}
		existing, ok := defaults[key]
		if !ok {
			defaults[key] = val
			continue
		}
		existingMap, existingIsMap := existing.(map[string]interface{})
		valMap, valIsMap := val.(map[string]interface{})
		switch {
		case existingIsMap && valIsMap:
			if err := mergeAt(keyPath, existingMap, valMap); err != nil {
				return err
			}
		case existingIsMap && val != nil:
			return fmt.Errorf("config %s: expected a mapping, found %T", keyPath, val)
		case replaces(val):
			defaults[key] = val
		}
	}
	return nil
}

// ApplyDefaults merges overrideCfg on top of defaultCfg and writes the result to newCfg.
// Both are round-tripped through yaml, so the config types must carry yaml tags.
func ApplyDefaults(defaultCfg interface{}, overrideCfg interface{}, newCfg interface{}) error {
	defaults, err := toMap(defaultCfg)
	if err != nil {
		return err
	}
	overrides, err := toMap(overrideCfg)
	if err != nil {
		return err
	}
	if err := MergeOverrides(defaults, overrides); err != nil {
		return err
	}
	bz, err := yaml.Marshal(defaults)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bz, newCfg)
}

func toMap(cfg interface{}) (map[string]interface{}, error) {
	bz, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	asMap := map[string]interface{}{}
	if err := yaml.Unmarshal(bz, &asMap); err != nil {
		return nil, err
	}
	return asMap, nil
}
