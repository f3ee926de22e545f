package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func asJson(data any) string {
	bz, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// printFormatted writes data as yaml, or as json by round-tripping the yaml so
// field names match the yaml tags.
func printFormatted(w io.Writer, format string, data any) error {
	dataYamlBz, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	switch format {
	case "yaml":
		_, err = fmt.Fprint(w, string(dataYamlBz))
		return err
	case "json":
		var reserialized any
		if err := yaml.Unmarshal(dataYamlBz, &reserialized); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, asJson(reserialized))
		return err
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}
