// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netim/core"
)

// FromCore freezes a core.Graph into a Snapshot.
//
// Vertex IDs are ordered naturally: IDs that parse as integers come first
// in numeric order, the rest follow lexicographically. With the builder's
// default decimal IDs this makes node id i correspond to vertex "i".
// Label/Index translate between the two spaces.
//
// Errors: ErrNilGraph, ErrParallelEdges (multigraphs), ErrBadWeight.
// Complexity: O(V log V + E log d).
func FromCore(g *core.Graph) (*Snapshot, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	labels := g.Vertices()
	sort.SliceStable(labels, func(i, j int) bool { return naturalLess(labels[i], labels[j]) })
	index := make(map[string]int, len(labels))
	for i, id := range labels {
		index[id] = i
	}

	ces := g.Edges()
	edges := make([]Edge, 0, len(ces))
	for _, e := range ces {
		edges = append(edges, Edge{From: index[e.From], To: index[e.To], Weight: e.Weight})
	}
	s, err := FromEdges(len(labels), g.Directed(), edges)
	if err != nil {
		return nil, fmt.Errorf("FromCore: %w", err)
	}
	s.setLabels(labels)

	return s, nil
}

// naturalLess orders integer-like IDs numerically before any other IDs.
func naturalLess(a, b string) bool {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	switch {
	case aerr == nil && berr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}

// FromGonum converts any gonum graph into a Snapshot. Nodes are ordered by
// their int64 ID; labels are the decimal IDs. Edge weights come from
// graph.Weighted when the source implements it, otherwise every edge
// weighs 1. Directedness follows graph.Directed.
//
// Errors: ErrNilGraph, ErrBadWeight, ErrParallelEdges.
// Complexity: O(V log V + E).
func FromGonum(g graph.Graph) (*Snapshot, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	index := make(map[int64]int, len(nodes))
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
		labels[i] = strconv.FormatInt(n.ID(), 10)
	}

	_, directed := g.(graph.Directed)
	weighted, hasWeights := g.(graph.Weighted)

	var edges []Edge
	for _, u := range nodes {
		uid := u.ID()
		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if !directed && index[vid] < index[uid] {
				continue
			}
			w := 1.0
			if hasWeights {
				if ew, ok := weighted.Weight(uid, vid); ok {
					w = ew
				}
			}
			edges = append(edges, Edge{From: index[uid], To: index[vid], Weight: w})
		}
	}

	s, err := FromEdges(len(nodes), directed, edges)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	s.setLabels(labels)

	return s, nil
}

// ToGonum exports a View as a gonum weighted graph with node IDs equal to
// the dense node ids. Self-loops are skipped because gonum simple graphs
// do not represent them.
func ToGonum(v View) graph.Weighted {
	if v.IsDirected() {
		g := simple.NewWeightedDirectedGraph(0, 0)
		fillGonum(v, g)
		return g
	}
	g := simple.NewWeightedUndirectedGraph(0, 0)
	fillGonum(v, g)

	return g
}

func fillGonum(v View, g graph.WeightedBuilder) {
	for i := 0; i < v.NumberOfNodes(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range v.Edges() {
		if e.From == e.To {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}
}
