// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/simgraph"
	"github.com/katalvlaran/simgraph/builder"
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/internal/config"
	"github.com/katalvlaran/simgraph/internal/logging"
	"github.com/katalvlaran/simgraph/internal/records"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	debug      bool
}

// ioOptions holds the input/output flags of build and compare.
type ioOptions struct {
	input         string
	format        string
	output        string
	pretty        bool
	dedup         bool
	params        []string
	fallbackLabel string
	dimension     int
	algorithm     string   // build only
	compare       []string // compare only
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:   "simgraph",
		Short: "Build similarity graphs over embedded records",
		Long: `simgraph groups embedded records (job postings, resume profiles) by label,
averages their embeddings per group and links the groups with one of eight
graph strategies.

Records are read as JSON, JSON Lines or YAML; the graph is written as JSON.

Examples:
  simgraph build -i jobs.jsonl -a mst --param minSim=0.4
  simgraph compare -i jobs.jsonl
  simgraph algorithms`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")

	root.AddCommand(newBuildCmd(g), newCompareCmd(g), newAlgorithmsCmd())

	return root
}

// addIOFlags registers the flags shared by build and compare.
func addIOFlags(fs *pflag.FlagSet, o *ioOptions) {
	fs.StringVarP(&o.input, "input", "i", "", "records file (default stdin)")
	fs.StringVar(&o.format, "format", "", "input format: json, jsonl or yaml (default from extension)")
	fs.StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	fs.BoolVar(&o.pretty, "pretty", false, "indent the JSON output")
	fs.BoolVar(&o.dedup, "dedup", false, "fold edges linking the same pair")
	fs.StringArrayVarP(&o.params, "param", "p", nil, "strategy parameter as name=value, repeatable")
	fs.StringVar(&o.fallbackLabel, "fallback-label", "", "label for records without one")
	fs.IntVar(&o.dimension, "dimension", 0, "expected embedding dimension (0 = first record)")
}

// resolveConfig loads the config file (or defaults) and overlays changed flags.
func resolveConfig(cmd *cobra.Command, g *globalOptions, o *ioOptions) (*config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("debug") {
		cfg.Debug = g.debug
	}
	if fs.Changed("input") {
		cfg.Input.Path = o.input
	}
	if fs.Changed("format") {
		cfg.Input.Format = o.format
	}
	if fs.Changed("output") {
		cfg.Output.Path = o.output
	}
	if fs.Changed("pretty") {
		cfg.Output.Pretty = o.pretty
	}
	if fs.Changed("dedup") {
		cfg.Dedup = o.dedup
	}
	if fs.Changed("fallback-label") {
		cfg.Builder.FallbackLabel = o.fallbackLabel
	}
	if fs.Changed("dimension") {
		cfg.Builder.Dimension = o.dimension
	}
	if fs.Changed("algorithm") {
		cfg.Algorithm = o.algorithm
	}
	if fs.Changed("algorithms") {
		cfg.Compare.Algorithms = o.compare
	}
	params, err := parseParams(o.params)
	if err != nil {
		return nil, err
	}
	for k, v := range params {
		cfg.Params[k] = v
	}

	return cfg, nil
}

// parseParams turns name=value pairs into numeric parameters.
func parseParams(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("param %q: want name=value", p)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", p, err)
		}
		out[name] = f
	}

	return out, nil
}

// newEngine builds the engine for cfg.
func newEngine(cfg *config.Config, log *zap.Logger) *simgraph.Engine {
	return simgraph.New(
		simgraph.WithLogger(log),
		simgraph.WithDedup(cfg.Dedup),
		simgraph.WithBuilderOptions(
			builder.WithFallbackLabel(cfg.Builder.FallbackLabel),
			builder.WithDimension(cfg.Builder.Dimension),
		),
	)
}

// readRecords decodes records from the configured file or from stdin.
func readRecords(cmd *cobra.Command, cfg *config.Config) ([]core.Record, error) {
	if cfg.Input.Path != "" {
		return records.ReadFile(cfg.Input.Path, cfg.Input.Format)
	}

	format := records.FormatJSON
	if cfg.Input.Format != "" {
		var err error
		if format, err = records.ParseFormat(cfg.Input.Format); err != nil {
			return nil, err
		}
	}

	return records.Decode(cmd.InOrStdin(), format)
}

// openOutput returns the configured output file or stdout, with its closer.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.Output.Path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}

// prepare resolves config, validates it and builds the logger.
func prepare(cmd *cobra.Command, g *globalOptions, o *ioOptions) (*config.Config, *zap.Logger, error) {
	cfg, err := resolveConfig(cmd, g, o)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, logging.NewOrNop(cfg.Debug), nil
}
