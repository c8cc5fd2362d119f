// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
	"sort"
)

// csr is one compressed adjacency: row v spans adj[off[v]:off[v+1]].
type csr struct {
	off []int
	adj []int
	w   []float64
}

func (c *csr) row(v int) []int         { return c.adj[c.off[v]:c.off[v+1]] }
func (c *csr) weights(v int) []float64 { return c.w[c.off[v]:c.off[v+1]] }

// Snapshot is an immutable CSR implementation of View. It is safe for
// concurrent use by any number of readers.
type Snapshot struct {
	n        int
	directed bool
	out      csr
	in       csr // aliases out for undirected snapshots
	edges    []Edge
	labels   []string
	index    map[string]int
}

var _ View = (*Snapshot)(nil)

// FromEdges builds a Snapshot over n nodes.
//
// Implementation:
//   - Stage 1: validate endpoints and weights.
//   - Stage 2: count row sizes, prefix-sum into offsets.
//   - Stage 3: scatter entries, then sort every row by neighbor id.
//   - Stage 4: reject duplicate neighbors inside a row.
//
// Errors: ErrNodeOutOfRange, ErrBadWeight, ErrParallelEdges.
// Complexity: O(n + m log d).
func FromEdges(n int, directed bool, edges []Edge) (*Snapshot, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrNodeOutOfRange)
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("FromEdges: edge %d→%d with n=%d: %w", e.From, e.To, n, ErrNodeOutOfRange)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("FromEdges: edge %d→%d: %w", e.From, e.To, ErrBadWeight)
		}
	}

	s := &Snapshot{n: n, directed: directed}
	if directed {
		s.out = buildCSR(n, edges, false)
		s.in = buildCSR(n, edges, true)
	} else {
		// Each undirected edge contributes to both rows; a self-loop once.
		mirrored := make([]Edge, 0, 2*len(edges))
		for _, e := range edges {
			mirrored = append(mirrored, e)
			if e.From != e.To {
				mirrored = append(mirrored, Edge{From: e.To, To: e.From, Weight: e.Weight})
			}
		}
		s.out = buildCSR(n, mirrored, false)
		s.in = s.out
	}
	if err := s.checkParallel(); err != nil {
		return nil, err
	}
	s.edges = s.collectEdges()

	return s, nil
}

// buildCSR scatters edges into rows keyed by From (or To when reverse).
func buildCSR(n int, edges []Edge, reverse bool) csr {
	c := csr{off: make([]int, n+1), adj: make([]int, len(edges)), w: make([]float64, len(edges))}
	for _, e := range edges {
		key := e.From
		if reverse {
			key = e.To
		}
		c.off[key+1]++
	}
	for v := 0; v < n; v++ {
		c.off[v+1] += c.off[v]
	}
	fill := make([]int, n)
	copy(fill, c.off[:n])
	for _, e := range edges {
		key, nb := e.From, e.To
		if reverse {
			key, nb = e.To, e.From
		}
		c.adj[fill[key]] = nb
		c.w[fill[key]] = e.Weight
		fill[key]++
	}
	for v := 0; v < n; v++ {
		sort.Sort(rowSorter{adj: c.row(v), w: c.weights(v)})
	}

	return c
}

type rowSorter struct {
	adj []int
	w   []float64
}

func (r rowSorter) Len() int           { return len(r.adj) }
func (r rowSorter) Less(i, j int) bool { return r.adj[i] < r.adj[j] }
func (r rowSorter) Swap(i, j int) {
	r.adj[i], r.adj[j] = r.adj[j], r.adj[i]
	r.w[i], r.w[j] = r.w[j], r.w[i]
}

func (s *Snapshot) checkParallel() error {
	for v := 0; v < s.n; v++ {
		row := s.out.row(v)
		for i := 1; i < len(row); i++ {
			if row[i] == row[i-1] {
				return fmt.Errorf("FromEdges: %d→%d: %w", v, row[i], ErrParallelEdges)
			}
		}
	}

	return nil
}

func (s *Snapshot) collectEdges() []Edge {
	out := make([]Edge, 0, len(s.out.adj))
	for u := 0; u < s.n; u++ {
		row, ws := s.out.row(u), s.out.weights(u)
		for i, v := range row {
			if !s.directed && v < u {
				continue
			}
			out = append(out, Edge{From: u, To: v, Weight: ws[i]})
		}
	}

	return out
}

// NumberOfNodes returns n.
func (s *Snapshot) NumberOfNodes() int { return s.n }

// IsDirected reports whether the snapshot is directed.
func (s *Snapshot) IsDirected() bool { return s.directed }

// Nodes returns a fresh slice 0..n-1.
func (s *Snapshot) Nodes() []int {
	out := make([]int, s.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Edges returns a copy of every edge once, ordered by (From, To).
func (s *Snapshot) Edges() []Edge { return append([]Edge(nil), s.edges...) }

// Neighbors returns the successors of v.
func (s *Snapshot) Neighbors(v int) []int { return s.out.row(v) }

// InNeighbors returns the predecessors of v.
func (s *Snapshot) InNeighbors(v int) []int { return s.in.row(v) }

// OutWeights returns the weights aligned with Neighbors(v).
func (s *Snapshot) OutWeights(v int) []float64 { return s.out.weights(v) }

// InWeights returns the weights aligned with InNeighbors(v).
func (s *Snapshot) InWeights(v int) []float64 { return s.in.weights(v) }

// Weight returns the weight of u→v.
func (s *Snapshot) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= s.n || v < 0 || v >= s.n {
		return 0, false
	}
	row := s.out.row(u)
	i := sort.SearchInts(row, v)
	if i < len(row) && row[i] == v {
		return s.out.weights(u)[i], true
	}

	return 0, false
}

// Degree returns InDegree+OutDegree (directed) or the neighbor count.
func (s *Snapshot) Degree(v int) int {
	if s.directed {
		return s.InDegree(v) + s.OutDegree(v)
	}

	return s.OutDegree(v)
}

// InDegree returns the number of predecessors of v.
func (s *Snapshot) InDegree(v int) int { return s.in.off[v+1] - s.in.off[v] }

// OutDegree returns the number of successors of v.
func (s *Snapshot) OutDegree(v int) int { return s.out.off[v+1] - s.out.off[v] }

// Label returns the external identifier of node v, or its decimal form
// when the snapshot was not built from labelled input.
func (s *Snapshot) Label(v int) string {
	if v >= 0 && v < len(s.labels) {
		return s.labels[v]
	}

	return fmt.Sprint(v)
}

// Labels maps node ids to their external identifiers.
func (s *Snapshot) Labels(nodes []int) []string {
	out := make([]string, len(nodes))
	for i, v := range nodes {
		out[i] = s.Label(v)
	}

	return out
}

// Index returns the node id of an external identifier.
func (s *Snapshot) Index(label string) (int, bool) {
	if s.index == nil {
		return 0, false
	}
	v, ok := s.index[label]

	return v, ok
}

func (s *Snapshot) setLabels(labels []string) {
	s.labels = labels
	s.index = make(map[string]int, len(labels))
	for i, l := range labels {
		s.index[l] = i
	}
}
