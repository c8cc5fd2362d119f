// SPDX-License-Identifier: MIT
// Package: netim/builder
//
// weights.go - edge-weighting schemes for influence models.
//
// Contract:
//   • Edges are rewritten in creation order (core.Graph.Edges), so stochastic
//     schemes are reproducible for a fixed seed.
//   • Every scheme produces weights in [0,1].
//   • Errors are sentinels wrapped with the scheme name; nothing is clamped.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netim/core"
)

// Scheme selects how ApplyWeights assigns edge weights.
type Scheme int

const (
	// Constant assigns the weight configured by WithConstantWeight.
	Constant Scheme = iota
	// Trivalency draws each weight uniformly from TrivalencyLevels.
	Trivalency
	// WeightedCascade assigns weight(u,v) = 1 / inDegree(v).
	WeightedCascade
)

// TrivalencyLevels are the candidate weights of the Trivalency scheme.
var TrivalencyLevels = [3]float64{0.001, 0.01, 0.1}

// String returns the conventional short name (CONSTANT, TV, WC).
func (s Scheme) String() string {
	switch s {
	case Constant:
		return "CONSTANT"
	case Trivalency:
		return "TV"
	case WeightedCascade:
		return "WC"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// ParseScheme resolves a case-insensitive scheme name.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "CONSTANT":
		return Constant, nil
	case "TV", "TRIVALENCY":
		return Trivalency, nil
	case "WC", "WEIGHTED_CASCADE", "WEIGHTEDCASCADE":
		return WeightedCascade, nil
	default:
		return 0, fmt.Errorf("ParseScheme(%q): %w", name, ErrUnknownScheme)
	}
}

// ApplyWeights rewrites every edge weight of g according to scheme.
//
// Implementation:
//   - Stage 1: validate graph mode and scheme-specific configuration.
//   - Stage 2: for WeightedCascade, count in-degrees in one pass
//     (undirected edges count toward both endpoints).
//   - Stage 3: rewrite weights edge by edge in creation order.
//
// Errors: ErrUnweightedGraph, ErrUnknownScheme, ErrMissingWeight,
// ErrInvalidProbability, ErrNeedRandSource, ErrZeroInDegree.
// Complexity: O(E log E).
func ApplyWeights(g *core.Graph, scheme Scheme, opts ...BuilderOption) error {
	if g == nil {
		return fmt.Errorf("ApplyWeights: nil graph: %w", ErrConstructFailed)
	}
	if !g.Weighted() {
		return fmt.Errorf("ApplyWeights(%s): %w", scheme, ErrUnweightedGraph)
	}
	cfg := newBuilderConfig(opts...)
	edges := g.Edges()

	var weightOf func(e *core.Edge) (float64, error)
	switch scheme {
	case Constant:
		if !cfg.hasConstW {
			return fmt.Errorf("ApplyWeights(%s): %w", scheme, ErrMissingWeight)
		}
		if cfg.constW > probMax {
			return fmt.Errorf("ApplyWeights(%s): w=%g: %w", scheme, cfg.constW, ErrInvalidProbability)
		}
		weightOf = func(*core.Edge) (float64, error) { return cfg.constW, nil }

	case Trivalency:
		if cfg.rng == nil {
			return fmt.Errorf("ApplyWeights(%s): %w", scheme, ErrNeedRandSource)
		}
		weightOf = func(*core.Edge) (float64, error) {
			return TrivalencyLevels[cfg.rng.Intn(len(TrivalencyLevels))], nil
		}

	case WeightedCascade:
		in := inDegrees(edges)
		weightOf = func(e *core.Edge) (float64, error) {
			d := in[e.To]
			if d == 0 {
				return 0, fmt.Errorf("vertex %q: %w", e.To, ErrZeroInDegree)
			}
			return 1 / float64(d), nil
		}

	default:
		return fmt.Errorf("ApplyWeights(%s): %w", scheme, ErrUnknownScheme)
	}

	for _, e := range edges {
		w, err := weightOf(e)
		if err != nil {
			return fmt.Errorf("ApplyWeights(%s): %w", scheme, err)
		}
		if err = g.SetEdgeWeight(e.ID, w); err != nil {
			return fmt.Errorf("ApplyWeights(%s): edge %s: %w", scheme, e.ID, err)
		}
	}

	return nil
}

// inDegrees counts incoming edges per vertex; undirected edges count for
// both endpoints.
func inDegrees(edges []*core.Edge) map[string]int {
	in := make(map[string]int)
	for _, e := range edges {
		in[e.To]++
		if !e.Directed {
			in[e.From]++
		}
	}

	return in
}
