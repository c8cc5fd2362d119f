// SPDX-License-Identifier: MIT

// Package ris selects seed sets by Reverse Influence Sampling.
//
// What
//
//   - Sampler draws reverse-reachable (RR) sets. Under IC it is a reverse
//     breadth-first walk that crosses each edge u→w with probability
//     weight(u,w); under LT it is a backward random walk that moves to a
//     uniformly chosen in-neighbor and stops at a node without in-neighbors
//     or at a node already on the walk.
//   - Pool is a growing, reproducible stream of RR sets. Set j belongs to
//     chunk j/ChunkSize, and chunk c is generated by its own source seeded
//     with seed+c, so the stream does not depend on how often the pool grew
//     or how many workers generated it.
//   - CoverageIndex is the greedy max-coverage selector shared by RIS and
//     IMM. It keeps, per node, the number of not yet covered RR sets that
//     contain it, and updates those counts incrementally as sets get covered.
//   - RIS selects from a caller-sized sample; IMM sizes the sample itself
//     to reach a (1 − 1/e − ε) approximation with probability at least
//     1 − n^(−ℓ).
//
// Coverage
//
//	The fraction F of RR sets hit by a seed set S estimates σ(S)/n, where σ
//	is the expected spread, so n·F is a spread estimate.
//
// Errors
//
//   - ErrUnsupportedModel for models other than IC and LT.
//   - ErrBadBudget, ErrBadSampleCount, ErrBadEpsilon, ErrBadEll for invalid
//     parameters; network.ErrWeightOutOfRange for non-probability weights.
package ris
