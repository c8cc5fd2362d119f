// SPDX-License-Identifier: MIT

package diffusion

// stepIC lets every node activated in the previous round try each of its
// inactive out-neighbors once, succeeding with probability weight(u,v).
// Only the frontier transmits, so an edge is never tried twice, and its
// coin is fixed by the run's world.
func (e *Engine) stepIC() []int {
	var next []int
	for _, u := range e.frontier {
		nbrs, ws := e.g.Neighbors(u), e.g.OutWeights(u)
		for i, v := range nbrs {
			if e.state[v] != Inactive {
				continue
			}
			if e.coin(u, v, 0) < ws[i] {
				e.state[v] = Active
				next = append(next, v)
			}
		}
	}
	e.reached = append(e.reached, next...)
	e.frontier = append(e.frontier[:0], next...)

	return next
}
