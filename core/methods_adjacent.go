// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, InNeighborIDs) and the adjacency helper.
// Determinism:
//   - Neighbors() sorts by edge creation order.
//   - NeighborIDs() / InNeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns the edges leaving id. Undirected edges are incident in
// both directions and appear once; a directed edge appears only at its From.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique successors of id (adjacent vertices for
// undirected graphs), sorted lexicographically.
//
// Errors: propagated from Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		seen[e.From] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// InNeighborIDs returns the unique predecessors of id, sorted
// lexicographically. For undirected graphs it equals NeighborIDs.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(E) for directed graphs.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if !g.directed {
		return g.NeighborIDs(id)
	}
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	for from, row := range g.adjacencyList {
		if len(row[id]) > 0 {
			seen[from] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

func sortedKeys(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}

// ensureAdjacency makes sure adjacencyList[from][to] exists.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	row, ok := g.adjacencyList[from]
	if !ok {
		row = make(map[string]map[string]struct{})
		g.adjacencyList[from] = row
	}
	if _, ok = row[to]; !ok {
		row[to] = make(map[string]struct{})
	}
}
