package bindgen

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config controls stub generation. Every table overlays the defaults, so a
// mapping file only needs the entries it changes.
type Config struct {
	// Package is the package clause of the generated file.
	Package string `toml:"package"`
	// TypeMap translates source type names into target type names.
	TypeMap map[string]string `toml:"type_map"`
	// Rename translates declared names (interfaces, vars, functions).
	Rename map[string]string `toml:"rename"`
	// Skip lists declared names to leave out of the output entirely.
	Skip []string `toml:"skip"`
}

// DefaultConfig returns the built-in primitive mappings.
func DefaultConfig() Config {
	return Config{
		Package: "bindings",
		TypeMap: map[string]string{
			"number":    "float64",
			"string":    "string",
			"boolean":   "bool",
			"void":      "",
			"any":       "any",
			"unknown":   "any",
			"object":    "map[string]any",
			"null":      "any",
			"undefined": "any",
			"never":     "any",
		},
		Rename: map[string]string{},
	}
}

// LoadConfig reads a TOML mapping file and overlays it on the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var overlay Config
	if _, err := toml.DecodeFile(path, &overlay); err != nil {
		return Config{}, fmt.Errorf("load bindgen config %s: %w", path, err)
	}

	if overlay.Package != "" {
		cfg.Package = overlay.Package
	}
	for k, v := range overlay.TypeMap {
		cfg.TypeMap[k] = v
	}
	for k, v := range overlay.Rename {
		cfg.Rename[k] = v
	}
	cfg.Skip = append(cfg.Skip, overlay.Skip...)
	return cfg, nil
}

func (c *Config) skipped(name string) bool {
	for _, s := range c.Skip {
		if s == name {
			return true
		}
	}
	return false
}

func (c *Config) renamed(name string) string {
	if mapped, ok := c.Rename[name]; ok {
		return mapped
	}
	return name
}
