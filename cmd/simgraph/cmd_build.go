// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/simgraph/algorithms"
	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/internal/config"
	"github.com/katalvlaran/simgraph/internal/export"
)

// newBuildCmd builds one graph and writes it as a JSON document.
func newBuildCmd(g *globalOptions) *cobra.Command {
	o := &ioOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build one similarity graph",
		Long: `Group the input records into nodes, run one strategy and write the graph.

The community strategy also exports each node's community index; the cliques
strategy also exports the retained cliques.

Examples:
  simgraph build -i jobs.json -a threshold --param minSim=0.8
  cat jobs.jsonl | simgraph build --format jsonl -a knn -p k=5 --dedup`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := prepare(cmd, g, o)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runBuild(cmd, cfg, log)
		},
	}
	addIOFlags(cmd.Flags(), o)
	cmd.Flags().StringVarP(&o.algorithm, "algorithm", "a", "", "strategy key (see 'simgraph algorithms')")

	return cmd
}

// runBuild executes the pipeline for cfg and writes the document.
func runBuild(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) error {
	strategy, err := algorithms.Lookup(cfg.Algorithm)
	if err != nil {
		return err
	}
	recs, err := readRecords(cmd, cfg)
	if err != nil {
		return err
	}

	eng := newEngine(cfg, log)
	nodes, err := eng.Nodes(recs)
	if err != nil {
		return err
	}
	params := cfg.AlgorithmParams()
	edges, err := eng.Edges(nodes, strategy.Key, params)
	if err != nil {
		return err
	}

	doc := export.NewDocument(core.Graph{Nodes: nodes, Edges: edges}, strategy, params, cfg.Dedup)
	switch strategy.Key {
	case algorithms.KeyCommunity:
		doc.Communities = algorithms.CommunityMembership(nodes, doc.Params[algorithms.ParamCommunityThreshold])
	case algorithms.KeyCliques:
		if doc.Cliques, err = algorithms.MaximalCliques(nodes, doc.Params[algorithms.ParamMinSim]); err != nil {
			return err
		}
	}

	w, closeOut, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	if err := export.Write(w, doc, cfg.Output.Pretty); err != nil {
		_ = closeOut()
		return err
	}
	log.Debug("wrote graph", zap.String("run_id", doc.RunID), zap.String("output", cfg.Output.Path))

	return closeOut()
}
