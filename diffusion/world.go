// SPDX-License-Identifier: MIT

package diffusion

// Every random decision of a run is a pure function of the run's world key
// and the decision's coordinates, never of how many draws came before it.
// Two runs that share a key therefore see the same coin for an edge or
// node, whatever their seed sets or traversal order.

// Coordinate tags for node-level decisions; edge coins use the target id.
const (
	tagThreshold = -1 - iota
	tagLiveEdge
	tagRecovery
)

// splitmix64 finalizer.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// unit maps (world, a, b, c) to a uniform float64 in [0,1).
func (e *Engine) unit(a, b, c int) float64 {
	h := mix(e.world ^ uint64(a))
	h = mix(h ^ uint64(b))
	h = mix(h ^ uint64(c))

	return float64(h>>11) / (1 << 53)
}

// coin is the Bernoulli draw of edge u→v in round r.
func (e *Engine) coin(u, v, r int) float64 { return e.unit(u, v, r) }

// threshold returns v's LT threshold; round is 0 under PerRun.
func (e *Engine) threshold(v, round int) float64 {
	u := e.unit(v, tagThreshold, round)
	return e.cfg.tLo + u*(e.cfg.tHi-e.cfg.tLo)
}

// liveParent returns the in-neighbor whose edge into v is live in this
// world, or -1. In-neighbor i is chosen with probability InWeights(v)[i];
// no edge is live with the remaining probability.
func (e *Engine) liveParent(v int) int {
	if e.parentAt[v] == e.epoch {
		return e.parent[v]
	}
	r := e.unit(v, tagLiveEdge, 0)
	p, cum := -1, 0.0
	ws := e.g.InWeights(v)
	for i, u := range e.g.InNeighbors(v) {
		cum += ws[i]
		if r < cum {
			p = u
			break
		}
	}
	e.parent[v], e.parentAt[v] = p, e.epoch

	return p
}
