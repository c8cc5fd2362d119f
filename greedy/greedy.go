// SPDX-License-Identifier: MIT

package greedy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/network"
)

// Greedy selects k seeds by exhaustive marginal-gain search.
//
// Errors: ErrNilGraph, ErrBadBudget, ErrBadRounds, ErrOptionViolation and
// wrapped diffusion or montecarlo errors.
// Complexity: O(k·n) estimates of `rounds` diffusions each.
func Greedy(g network.View, model diffusion.Model, k, rounds int, opts ...Option) ([]int, error) {
	ev, err := newEvaluator(g, model, k, rounds, opts)
	if err != nil {
		return nil, fmt.Errorf("Greedy: %w", err)
	}
	n := g.NumberOfNodes()
	seeds := make([]int, 0, k)
	chosen := make([]bool, n)

	for it := 1; it <= k; it++ {
		base, err := ev.total(seeds)
		if err != nil {
			return nil, fmt.Errorf("Greedy: baseline: %w", err)
		}
		best, bestGain := -1, math.Inf(-1)
		for v := 0; v < n; v++ {
			if chosen[v] {
				continue
			}
			s, err := ev.with(seeds, v)
			if err != nil {
				return nil, fmt.Errorf("Greedy: node %d: %w", v, err)
			}
			if gain := s - base; gain > bestGain {
				best, bestGain = v, gain
			}
		}
		chosen[best] = true
		seeds = append(seeds, best)
		ev.report("greedy", it, k, best, bestGain, base+bestGain)
	}

	return seeds, nil
}
