// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/internal/config"
)

// writeConfig stores content in a temporary config.yaml and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
debug: true
algorithm: knn
dedup: true
params:
  k: 5
  minSim: 0.4
input:
  path: jobs.jsonl
  format: jsonl
output:
  path: graph.json
  pretty: true
builder:
  dimension: 1536
compare:
  algorithms: [threshold, pathfinder]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "knn", cfg.Algorithm)
	assert.True(t, cfg.Dedup)
	assert.Equal(t, 5.0, cfg.AlgorithmParams().Float("k", 0))
	assert.Equal(t, "jsonl", cfg.Input.Format)
	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, 1536, cfg.Builder.Dimension)
	assert.Equal(t, "Unknown", cfg.Builder.FallbackLabel)
	assert.Equal(t, []string{"threshold", "pathfinder"}, cfg.Compare.Algorithms)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "input:\n  path: records.json\n"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAlgorithm, cfg.Algorithm)
	assert.NotNil(t, cfg.Params)
	assert.False(t, cfg.Debug)
	assert.Equal(t, config.Default().Builder, cfg.Builder)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown algorithm":     "algorithm: louvain\n",
		"unknown format":        "input:\n  format: csv\n",
		"negative dimension":    "builder:\n  dimension: -1\n",
		"unknown compare entry": "compare:\n  algorithms: [mst, spectral]\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, content))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_ReadAndParseErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "params: [not, a, map]\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}
