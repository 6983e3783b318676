package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// loadConfig reads a config file, accepting JSON, YAML or TOML by file
// extension. YAML and TOML are decoded generically and re-marshaled through
// JSON so the featurizer entries land in the same RawMessage form.
func loadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		var m map[string]any
		if err := yaml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if b, err = json.Marshal(normalizeKeys(m)); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case ".toml":
		var m map[string]any
		if err := toml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if b, err = json.Marshal(normalizeKeys(m)); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// normalizeKeys rewrites yaml's map[any]any nodes into map[string]any so
// they survive json.Marshal.
func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = normalizeKeys(val)
		}
		return t
	}
	return v
}
