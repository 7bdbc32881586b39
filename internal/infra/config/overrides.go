package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadOverrides reads an operator override file mapping field names to defaults.
// The format is chosen by extension: .toml, or .yaml/.yml.
func LoadOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return tomlOverrides(path, data)
	case ".yaml", ".yml":
		return yamlOverrides(path, data)
	default:
		return nil, fmt.Errorf("read overrides %s: unsupported file extension", path)
	}
}

func tomlOverrides(path string, data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}

	overrides := make(map[string]string, len(raw))
	for name, v := range raw {
		s, err := scalarString(v)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", name, err)
		}
		overrides[name] = s
	}
	return overrides, nil
}

// yamlOverrides keeps each scalar exactly as written, so "1.10" stays "1.10".
func yamlOverrides(path string, data []byte) (map[string]string, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}

	overrides := make(map[string]string, len(raw))
	for name, node := range raw {
		n := &node
		if n.Kind == yaml.AliasNode && n.Alias != nil {
			n = n.Alias
		}
		if n.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("override %q: value must be a scalar", name)
		}
		if n.ShortTag() == "!!null" {
			overrides[name] = ""
			continue
		}
		overrides[name] = n.Value
	}
	return overrides, nil
}

// MergeOverrides layers file on top of base. Neither input is modified.
func MergeOverrides(base, file map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(file))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range file {
		merged[k] = v
	}
	return merged
}

// scalarString renders a decoded scalar as the answer text a user would type.
func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool, int, int64, uint64:
		return fmt.Sprint(val), nil
	case float64:
		// 1.10 would come back as 1.1
		return "", fmt.Errorf("float value %v must be quoted", val)
	case time.Time:
		return val.Format(time.RFC3339), nil
	case toml.LocalDate:
		return val.String(), nil
	case toml.LocalTime:
		return val.String(), nil
	case toml.LocalDateTime:
		return val.String(), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("value must be a scalar, got %T", v)
	}
}
