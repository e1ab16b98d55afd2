// SPDX-License-Identifier: MIT

package builder

import "go.uber.org/zap"

// DefaultFallbackLabel groups records that carry no label.
const DefaultFallbackLabel = "Unknown"

// Option customizes Build by mutating a buildConfig before grouping starts.
type Option func(*buildConfig)

// buildConfig aggregates the knobs of Build. Later options override earlier ones.
type buildConfig struct {
	fallbackLabel string      // label for records with an empty Label
	dimension     int         // 0 means "take it from the first valid record"
	logger        *zap.Logger // never nil after newBuildConfig
}

// WithFallbackLabel sets the group label used for records without a label.
// Panics on an empty label, which would make the fallback group unaddressable.
func WithFallbackLabel(label string) Option {
	if label == "" {
		panic("builder: WithFallbackLabel(\"\")")
	}
	return func(c *buildConfig) {
		c.fallbackLabel = label
	}
}

// WithDimension pins the embedding dimension D. Records of any other length are
// dropped. Zero restores auto-detection; negative values panic.
func WithDimension(d int) Option {
	if d < 0 {
		panic("builder: WithDimension(d<0)")
	}
	return func(c *buildConfig) {
		c.dimension = d
	}
}

// WithLogger attaches a logger that receives debug entries about dropped input.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// newBuildConfig resolves defaults and applies opts in order.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		fallbackLabel: DefaultFallbackLabel,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
