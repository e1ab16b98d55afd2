// SPDX-License-Identifier: MIT

package simgraph

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simgraph/algorithms"
	"github.com/katalvlaran/simgraph/builder"
	"github.com/katalvlaran/simgraph/core"
)

// Option customizes an Engine.
type Option func(*Engine)

// Engine runs the records → nodes → edges pipeline.
// An Engine holds no per-call state and may be shared across goroutines.
type Engine struct {
	log         *zap.Logger
	dedup       bool
	builderOpts []builder.Option
}

// WithLogger attaches a logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithDedup folds edges that link the same unordered pair (see core.Dedup)
// after the strategy runs. Off by default: strategies keep their own output.
func WithDedup(on bool) Option {
	return func(e *Engine) {
		e.dedup = on
	}
}

// WithBuilderOptions forwards opts to builder.Build on every call.
func WithBuilderOptions(opts ...builder.Option) Option {
	return func(e *Engine) {
		e.builderOpts = append(e.builderOpts, opts...)
	}
}

// New returns an Engine with a no-op logger and no deduplication.
func New(opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Nodes groups records into Nodes. It returns builder.ErrNoUsableData when no
// record carries a usable embedding.
func (e *Engine) Nodes(records []core.Record) ([]core.Node, error) {
	opts := make([]builder.Option, 0, len(e.builderOpts)+1)
	opts = append(opts, builder.WithLogger(e.log))
	opts = append(opts, e.builderOpts...)

	return builder.Build(records, opts...)
}

// Edges runs the strategy registered under key on nodes.
func (e *Engine) Edges(nodes []core.Node, key string, params algorithms.Params) ([]core.Edge, error) {
	start := time.Now()
	edges, err := algorithms.Compute(key, nodes, params)
	if err != nil {
		return nil, fmt.Errorf("compute %s: %w", key, err)
	}
	raw := len(edges)
	if e.dedup {
		edges = core.Dedup(edges)
	}
	e.log.Info("computed edges",
		zap.String("algorithm", key),
		zap.Int("nodes", len(nodes)),
		zap.Int("edges", len(edges)),
		zap.Int("raw_edges", raw),
		zap.Duration("elapsed", time.Since(start)),
	)

	return edges, nil
}

// Build runs the whole pipeline. The key is checked before any record is
// grouped, so an unknown key fails fast with algorithms.ErrUnknownAlgorithm.
func (e *Engine) Build(records []core.Record, key string, params algorithms.Params) (core.Graph, error) {
	if _, err := algorithms.Lookup(key); err != nil {
		return core.Graph{}, err
	}
	nodes, err := e.Nodes(records)
	if err != nil {
		return core.Graph{}, err
	}
	edges, err := e.Edges(nodes, key, params)
	if err != nil {
		return core.Graph{}, err
	}

	return core.Graph{Nodes: nodes, Edges: edges}, nil
}

// Comparison summarizes one strategy run inside Compare.
type Comparison struct {
	Key         string
	DisplayName string
	Edges       int
	Elapsed     time.Duration
}

// Compare runs every strategy in keys over the same nodes concurrently and
// returns one Comparison per key, in keys order. An empty keys runs the whole
// registry. Unknown parameter names are ignored by the strategies that do not
// read them, so one params map can serve all keys.
//
// The first failure cancels the strategies that have not started yet.
func (e *Engine) Compare(ctx context.Context, nodes []core.Node, keys []string, params algorithms.Params) ([]Comparison, error) {
	if len(keys) == 0 {
		keys = algorithms.Keys()
	}
	strategies := make([]algorithms.Algorithm, len(keys))
	for i, key := range keys {
		a, err := algorithms.Lookup(key)
		if err != nil {
			return nil, err
		}
		strategies[i] = a
	}

	out := make([]Comparison, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range strategies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			edges, err := a.Compute(nodes, params)
			if err != nil {
				return fmt.Errorf("compute %s: %w", a.Key, err)
			}
			if e.dedup {
				edges = core.Dedup(edges)
			}
			out[i] = Comparison{
				Key:         a.Key,
				DisplayName: a.DisplayName,
				Edges:       len(edges),
				Elapsed:     time.Since(start),
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range out {
		e.log.Info("compared",
			zap.String("algorithm", c.Key),
			zap.Int("edges", c.Edges),
			zap.Duration("elapsed", c.Elapsed),
		)
	}

	return out, nil
}
