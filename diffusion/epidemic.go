// SPDX-License-Identifier: MIT

package diffusion

// heal moves every infected node to Recovered with probability gamma
// and compacts the infectious set in place.
func (e *Engine) heal() []int {
	var out []int
	kept := e.reached[:0]
	for _, u := range e.reached {
		if e.unit(u, tagRecovery, e.round) < e.gamma {
			e.state[u] = Recovered
			out = append(out, u)
			continue
		}
		kept = append(kept, u)
	}
	e.reached = kept
	e.recovered = append(e.recovered, out...)

	return out
}

// spread lets every infected node (not only the newly infected) try each
// susceptible neighbor with probability beta. Nodes infected in this round
// start transmitting in the next one.
func (e *Engine) spread() []int {
	var next []int
	prev := len(e.reached)
	for i := 0; i < prev; i++ {
		u := e.reached[i]
		for _, v := range e.g.Neighbors(u) {
			if e.state[v] != Susceptible {
				continue
			}
			if e.coin(u, v, e.round) < e.beta {
				e.state[v] = Infected
				next = append(next, v)
			}
		}
	}
	e.reached = append(e.reached, next...)

	return next
}

// stalled reports that no infection can happen any more.
func (e *Engine) stalled() bool {
	if e.beta == 0 {
		return true
	}
	for _, u := range e.reached {
		for _, v := range e.g.Neighbors(u) {
			if e.state[v] == Susceptible {
				return false
			}
		}
	}

	return true
}
