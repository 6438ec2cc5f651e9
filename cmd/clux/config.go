package main

import (
	"os"

	"github.com/goccy/go-yaml"
)

// loadConfig reads a YAML preset file overriding indent/encoding/maxDepth,
// defaulting any field the file omits.
func loadConfig(path string) (*settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := defaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
