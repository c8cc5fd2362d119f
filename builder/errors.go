// SPDX-License-Identifier: MIT
// Package: netim/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1], for
// RandomSparse(p) and for weights that are used as probabilities.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or scheme
// requires an RNG (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not complete
// (e.g. a nil constructor was supplied).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownScheme indicates an unrecognised weighting scheme name.
var ErrUnknownScheme = errors.New("builder: unknown weighting scheme")

// ErrMissingWeight indicates the Constant scheme was requested without a
// weight (WithConstantWeight).
var ErrMissingWeight = errors.New("builder: constant scheme requires a weight")

// ErrZeroInDegree indicates a degree-normalized scheme met a vertex with no
// incoming edges where a weight had to be assigned.
var ErrZeroInDegree = errors.New("builder: zero in-degree under degree-normalized weighting")

// ErrUnweightedGraph indicates weights were requested on a graph created
// without core.WithWeighted().
var ErrUnweightedGraph = errors.New("builder: graph is not weighted")
