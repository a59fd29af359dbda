package config

import (
	"encoding/json"
	"fmt"
	"io"
)

// DumpOption configures dump behavior.
type DumpOption func(*dumpConfig)

type dumpConfig struct {
	asJSON bool
	indent string
}

// AsJSON renders the configuration as JSON instead of key = value text.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output. Default is two spaces.
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// Dump writes a human-readable rendering of the effective configuration.
// Unset optional fields render as <unset> in text mode and are omitted from
// JSON output.
func Dump(w io.Writer, cfg *Config, opts ...DumpOption) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	dc := dumpConfig{indent: "  "}
	for _, opt := range opts {
		opt(&dc)
	}

	values := cfg.values()
	if dc.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", dc.indent)
		return enc.Encode(values)
	}

	for _, f := range fields {
		v, ok := values[f.name]
		if !ok {
			if _, err := fmt.Fprintf(w, "%s = <unset>\n", f.name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s = %v\n", f.name, v); err != nil {
			return err
		}
	}
	return nil
}
