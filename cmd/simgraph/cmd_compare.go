// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/simgraph/internal/config"
	"github.com/katalvlaran/simgraph/internal/export"
)

// newCompareCmd runs several strategies over one node set.
func newCompareCmd(g *globalOptions) *cobra.Command {
	o := &ioOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several strategies and report edge counts and timings",
		Long: `Group the input records once, then run the selected strategies concurrently
over the same nodes. Parameters given with --param are shared; each strategy
reads the names it understands.

Examples:
  simgraph compare -i jobs.jsonl
  simgraph compare -i jobs.jsonl --algorithms threshold,mst -p minSim=0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := prepare(cmd, g, o)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runCompare(cmd, cfg, log)
		},
	}
	addIOFlags(cmd.Flags(), o)
	cmd.Flags().StringSliceVar(&o.compare, "algorithms", nil, "strategy keys to run (default all)")

	return cmd
}

// runCompare executes the comparison for cfg and writes the summary.
func runCompare(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) error {
	recs, err := readRecords(cmd, cfg)
	if err != nil {
		return err
	}
	eng := newEngine(cfg, log)
	nodes, err := eng.Nodes(recs)
	if err != nil {
		return err
	}
	results, err := eng.Compare(cmd.Context(), nodes, cfg.Compare.Algorithms, cfg.AlgorithmParams())
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	if err := export.Write(w, export.NewComparison(len(nodes), results), cfg.Output.Pretty); err != nil {
		_ = closeOut()
		return err
	}

	return closeOut()
}
