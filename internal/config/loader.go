package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// LoadFile loads an HCL config file. A missing file is not an error:
// the watchdog must still run with its built-in defaults when invoked
// bare from a scheduler.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadBytes(data, path)
}

// LoadBytes decodes HCL config bytes.
func LoadBytes(data []byte, filename string) (*Config, error) {
	var cfg Config
	if err := hclsimple.Decode(filename, data, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad loads a config file and falls back to defaults if the file
// is unreadable, logging nothing itself; callers decide how to report.
func MustLoad(path string) *Config {
	cfg, err := LoadFile(path)
	if err != nil {
		cfg = Default()
	}
	return cfg
}
