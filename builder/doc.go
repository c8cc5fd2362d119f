// SPDX-License-Identifier: MIT

// Package builder provides deterministic topology constructors and the
// edge-weighting collaborator for influence experiments.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a core.Graph and apply
//     constructors in order.
//   - Topologies (Constructor closures):
//     – Path(n), Cycle(n), Star(n), Complete(n), RandomSparse(n, p).
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",...), SymbolNumberIDFn.
//   - Edge-weight generators (WeightFn): ConstantWeightFn, UniformWeightFn.
//   - Weighting schemes (ApplyWeights) used by influence models:
//     – Constant:        every edge gets the configured weight.
//     – Trivalency:      each edge draws uniformly from {0.001, 0.01, 0.1}.
//     – WeightedCascade: weight(u,v) = 1 / inDegree(v).
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order yield
//     identical graphs and weights.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors and ApplyWeights return sentinel errors, never panic.
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrConstructFailed, ErrUnknownScheme, ErrMissingWeight, ErrZeroInDegree,
//	ErrUnweightedGraph.
package builder
