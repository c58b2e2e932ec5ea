package sempconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseSettings turns the caller-supplied settings into a map of SEMP v2
// attributes. Inline settings are a JSON object; a settings file holds a
// YAML document (JSON being a YAML subset, either works). Both empty means
// no settings. Supplying both is an error.
func ParseSettings(inline, file string) (map[string]any, error) {
	if inline != "" && file != "" {
		return nil, &ConfigError{Param: "settings", Reason: "inline settings and a settings file are mutually exclusive"}
	}

	if inline != "" {
		var settings map[string]any
		if err := json.Unmarshal([]byte(inline), &settings); err != nil {
			return nil, &ConfigError{Param: "settings", Reason: fmt.Sprintf("not a JSON object: %v", err)}
		}
		return settings, nil
	}

	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
		var settings map[string]any
		if err := yaml.Unmarshal(raw, &settings); err != nil {
			return nil, &ConfigError{Param: "settings-file", Reason: fmt.Sprintf("not a YAML mapping: %v", err)}
		}
		return settings, nil
	}

	return nil, nil
}
