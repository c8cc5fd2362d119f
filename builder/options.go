// SPDX-License-Identifier: MIT
// Package: netim/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and schemes themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor or weighting scheme by mutating a
// builderConfig before use.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator used by
// constructors on weighted graphs. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight sets the weight used both by constructors (as a
// constant WeightFn) and by the Constant weighting scheme.
// Panics on NaN or negative values; range against [0,1] is checked by
// ApplyWeights so that the error surfaces as ErrInvalidProbability.
func WithConstantWeight(w float64) BuilderOption {
	if math.IsNaN(w) || w < 0 {
		panic(fmt.Sprintf("builder: WithConstantWeight(%g)", w))
	}
	fn := ConstantWeightFn(w)
	return func(c *builderConfig) {
		c.weightFn = fn
		c.constW = w
		c.hasConstW = true
	}
}

// WithUniformWeight sets constructor weights ∼ U[min,max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
