// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the simgraph command.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simgraph/algorithms"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all configuration for one simgraph run.
type Config struct {
	Debug     bool               `yaml:"debug"`
	Algorithm string             `yaml:"algorithm" validate:"required,algorithm"`
	Dedup     bool               `yaml:"dedup"`
	Params    map[string]float64 `yaml:"params"`
	Input     InputConfig        `yaml:"input"`
	Output    OutputConfig       `yaml:"output"`
	Builder   BuilderConfig      `yaml:"builder"`
	Compare   CompareConfig      `yaml:"compare"`
}

// InputConfig describes where records are read from. An empty Path means
// standard input; an empty Format is inferred from the Path extension.
type InputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format" validate:"omitempty,oneof=json jsonl yaml"`
}

// OutputConfig describes where the graph document is written. An empty Path
// means standard output.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Pretty bool   `yaml:"pretty"`
}

// BuilderConfig holds node-building settings.
type BuilderConfig struct {
	FallbackLabel string `yaml:"fallback_label" validate:"required"`
	Dimension     int    `yaml:"dimension" validate:"gte=0"`
}

// CompareConfig lists the strategies run by the compare command. Empty means
// the whole registry.
type CompareConfig struct {
	Algorithms []string `yaml:"algorithms" validate:"dive,algorithm"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("algorithm", validateAlgorithm)
}

// validateAlgorithm accepts registry keys only.
func validateAlgorithm(fl validator.FieldLevel) bool {
	_, err := algorithms.Lookup(fl.Field().String())
	return err == nil
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)

	return cfg
}

// Load reads and parses the config file at path, applies defaults and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags and returns an error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// AlgorithmParams returns Params as strategy parameters.
func (c *Config) AlgorithmParams() algorithms.Params {
	return algorithms.Params(c.Params)
}
