// SPDX-License-Identifier: MIT

// Package greedy selects influential seed sets by simulation: every
// candidate seed set is scored with a Monte-Carlo spread estimate.
//
//   - Greedy adds, k times, the node with the largest estimated marginal
//     gain. It costs O(k·n) estimates.
//   - CELF (cost-effective lazy forward) keeps every node's last computed
//     gain in a max-heap. Marginal gain never grows as the seed set grows,
//     so a heap top whose gain was computed against the current seed set is
//     the true maximum and is accepted without rescoring anybody else;
//     stale tops are rescored and pushed back.
//
// Ties go to the smaller node id in both algorithms, so on an exactly
// submodular objective they return the same ordered seed list.
//
// Every estimate uses the same base seed, and trial i of every estimate
// runs in the same random world (see package diffusion). Gains are
// compared as differences of summed outcome sizes over those worlds, so
// for IC and LT the estimated objective is exactly submodular and
// CELF returns Greedy's seeds whatever the edge weights. LT is run with
// the LiveEdge threshold policy unless WithDiffusionOptions selects
// another one. Candidates are scored one at a time; parallelism, when
// enabled with WithWorkers, lives inside each estimate.
package greedy
