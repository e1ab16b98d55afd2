// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/simgraph/algorithms"
	"github.com/katalvlaran/simgraph/builder"
)

// DefaultAlgorithm is the strategy used when none is configured.
const DefaultAlgorithm = algorithms.KeyMST

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = DefaultAlgorithm
	}
	if cfg.Params == nil {
		cfg.Params = map[string]float64{}
	}
	if cfg.Builder.FallbackLabel == "" {
		cfg.Builder.FallbackLabel = builder.DefaultFallbackLabel
	}
}
