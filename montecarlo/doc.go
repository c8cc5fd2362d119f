// SPDX-License-Identifier: MIT

// Package montecarlo estimates expected influence spread by repeating
// independent diffusions from a fixed seed set and averaging the outcome
// sizes.
//
// Determinism
//
//	Trial i reseeds its engine with base+i before resetting it, where base
//	is the WithSeed value (clock entropy when unset). The mapping does not
//	depend on the number of workers, so sequential and parallel runs with
//	the same seed produce identical estimates.
//
// Parallelism
//
//	WithWorkers(w) splits the trials into w contiguous blocks (the first
//	rounds%w blocks one trial longer) and runs each block on its own engine
//	clone through internal/workpool. The estimate is the mean over all
//	trials, so unequal block sizes do not bias it. A failing worker fails
//	the whole call.
package montecarlo
