// SPDX-License-Identifier: MIT

// Package diffusion implements the stochastic propagation processes that
// influence estimation and seed selection are built on.
//
// What
//
//   - Engine: a state machine over a network.View for one of four models,
//     chosen once at construction and validated eagerly:
//   - IC  (Independent Cascade): nodes activated in the previous round try
//     each inactive out-neighbor once, with probability weight(u,v).
//   - LT  (Linear Threshold): an inactive node activates when the summed
//     weight of its active in-neighbors reaches a uniform random threshold.
//   - SI: every infected node retries every susceptible neighbor each round
//     with a scalar probability beta.
//   - SIR: like SI, but each round first lets every infected node recover
//     with probability gamma; recovered nodes are immune.
//
// Control
//
//	Reset(seeds) restores the initial state, Step() performs one round and
//	returns the newly activated nodes, Run(maxRounds) steps until Done() or
//	the limit. Outcome() is the Active set for IC/LT, the Infected set for
//	SI and the Recovered set for SIR.
//
// Randomness
//
//	Every engine owns its *rand.Rand. WithSeed makes a run reproducible;
//	without it the source is seeded from the clock. Clone(seed) produces an
//	independent engine for another goroutine.
//
//	Reset draws one 64-bit world key from the source. Each random decision
//	(an edge coin, a threshold, a recovery, a live edge) is a hash of that
//	key and the decision's coordinates. Seed(s) followed by Reset therefore
//	fixes one random world for any seed set, and a larger seed set reaches
//	a superset of what a smaller one reaches in IC and live-edge LT.
//
// LT thresholds
//
//	By default (PerRound) a candidate's threshold is redrawn in every
//	round it is examined. WithThresholdPolicy(PerRun) fixes one threshold
//	per node for the run, which is the textbook model. Both draw from
//	[0,1) unless WithThresholdRange says otherwise. LiveEdge samples at
//	most one live in-edge per node instead; it matches PerRun on [0,1) in
//	distribution and is what seed selection uses.
//
// Errors
//
//   - ErrNilGraph, ErrEmptyGraph, ErrUnknownModel for bad construction input.
//   - network.ErrWeightOutOfRange when IC/LT weights are not probabilities.
//   - ErrBadProbability, ErrMissingGamma for SI/SIR rates.
//   - ErrSeedOutOfRange for seeds outside [0, n).
//   - ErrOptionViolation for invalid options.
package diffusion
