// SPDX-License-Identifier: MIT

// Package fixture builds the small weighted networks shared by tests and
// benchmarks. Graphs are produced with builder and frozen with
// network.FromCore, so node i is the builder vertex "i".
package fixture

import (
	"testing"

	"github.com/katalvlaran/netim/builder"
	"github.com/katalvlaran/netim/core"
	"github.com/katalvlaran/netim/network"
)

func build(tb testing.TB, directed bool, bopts []builder.BuilderOption, cons builder.Constructor) *network.Snapshot {
	tb.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(directed), core.WithWeighted()},
		bopts,
		cons,
	)
	if err != nil {
		tb.Fatalf("fixture: %v", err)
	}
	s, err := network.FromCore(g)
	if err != nil {
		tb.Fatalf("fixture: %v", err)
	}

	return s
}

// Chain returns the directed path 0→1→…→n-1 with every weight w.
func Chain(tb testing.TB, n int, w float64) *network.Snapshot {
	tb.Helper()
	return build(tb, true, []builder.BuilderOption{builder.WithConstantWeight(w)}, builder.Path(n))
}

// Star returns a directed star whose hub 0 points at m leaves with weight p.
func Star(tb testing.TB, m int, p float64) *network.Snapshot {
	tb.Helper()
	return build(tb, true, []builder.BuilderOption{builder.WithConstantWeight(p)}, builder.Star(m+1))
}

// UndirectedPath returns the undirected path 0-1-…-n-1 with weight w.
func UndirectedPath(tb testing.TB, n int, w float64) *network.Snapshot {
	tb.Helper()
	return build(tb, false, []builder.BuilderOption{builder.WithConstantWeight(w)}, builder.Path(n))
}

// Complete returns the undirected complete graph on n nodes with weight w.
func Complete(tb testing.TB, n int, w float64) *network.Snapshot {
	tb.Helper()
	return build(tb, false, []builder.BuilderOption{builder.WithConstantWeight(w)}, builder.Complete(n))
}

// Random returns a seeded directed G(n, p) weighted with the given scheme.
func Random(tb testing.TB, n int, p float64, seed int64, scheme builder.Scheme) *network.Snapshot {
	tb.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(n, p),
	)
	if err != nil {
		tb.Fatalf("fixture: %v", err)
	}
	opts := []builder.BuilderOption{builder.WithSeed(seed)}
	if scheme == builder.Constant {
		opts = append(opts, builder.WithConstantWeight(0.1))
	}
	if err = builder.ApplyWeights(g, scheme, opts...); err != nil {
		tb.Fatalf("fixture: %v", err)
	}
	s, err := network.FromCore(g)
	if err != nil {
		tb.Fatalf("fixture: %v", err)
	}

	return s
}
