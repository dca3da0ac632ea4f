package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadOptional is LoadFile, except that a missing file yields Default().
func LoadOptional(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Parse parses YAML data on top of Default(). Keys absent from data keep
// their default; unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults restores settings that must never be empty.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.VariableTable == "" {
		cfg.VariableTable = def.VariableTable
	}

	if cfg.EncodingTable == "" {
		cfg.EncodingTable = def.EncodingTable
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}
