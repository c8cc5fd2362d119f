// SPDX-License-Identifier: MIT
// Package: netim/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn        ("0","1","2",...)
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • constW    = unset               (Constant scheme requires WithConstantWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors and schemes.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges emitted by constructors (weighted graphs only).
	weightFn WeightFn
	// Weight of the Constant scheme; hasConstW records whether it was set.
	constW    float64
	hasConstW bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
