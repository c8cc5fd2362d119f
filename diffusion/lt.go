// SPDX-License-Identifier: MIT

package diffusion

import "sort"

// stepLT pushes the weight of every newly activated node to its inactive
// out-neighbors, then tests each touched node against its threshold.
//
// influence[v] always equals the summed weight of v's Active in-neighbors,
// since a node pushes exactly once, in the round after its activation.
// Under PerRound a candidate's threshold differs from round to round;
// under PerRun it is fixed for the run.
func (e *Engine) stepLT() []int {
	if e.cfg.policy == LiveEdge {
		return e.stepLiveEdge()
	}
	e.stamp++
	var cand []int
	for _, u := range e.frontier {
		nbrs, ws := e.g.Neighbors(u), e.g.OutWeights(u)
		for i, v := range nbrs {
			if e.state[v] != Inactive {
				continue
			}
			if e.influence[v] == 0 {
				e.influenced = append(e.influenced, v)
			}
			e.influence[v] += ws[i]
			if e.mark[v] != e.stamp {
				e.mark[v] = e.stamp
				cand = append(cand, v)
			}
		}
	}
	sort.Ints(cand)

	var next []int
	for _, v := range cand {
		r := e.round
		if e.cfg.policy == PerRun {
			r = 0
		}
		if e.influence[v] >= e.threshold(v, r) {
			e.state[v] = Active
			next = append(next, v)
		}
	}
	e.reached = append(e.reached, next...)
	e.frontier = append(e.frontier[:0], next...)

	return next
}

// stepLiveEdge activates every inactive node whose live in-edge starts
// at a node activated in the previous round.
func (e *Engine) stepLiveEdge() []int {
	var next []int
	for _, u := range e.frontier {
		for _, v := range e.g.Neighbors(u) {
			if e.state[v] == Inactive && e.liveParent(v) == u {
				e.state[v] = Active
				next = append(next, v)
			}
		}
	}
	e.reached = append(e.reached, next...)
	e.frontier = append(e.frontier[:0], next...)

	return next
}
