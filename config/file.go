package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads the config file at path, parses it by extension (.yaml/.yml,
// .json, .toml), and constructs a validated Config. A missing file is
// reported as a wrapped ErrNotFound; validation failures propagate as-is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var raw map[string]any
	switch inferFormat(path) {
	case "yaml", "json":
		// JSON documents are valid YAML; parsing both with the YAML
		// decoder keeps integers integral instead of float64.
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (supported: yaml, json, toml)", filepath.Ext(path))
	}

	return New(raw, path)
}

// LoadOrDefault loads path, falling back to an all-defaults record when the
// file does not exist. Parse and validation failures still propagate.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return New(nil, path)
	}
	return cfg, err
}

func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	}
	return ""
}
