// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle and degree queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically.
// Concurrency:
//   - Lock order is muVert -> muEdgeAdj for every method touching both.

package core

import "sort"

// AddVertex inserts a vertex with the given id. Re-adding an existing
// vertex is a no-op.
//
// Errors: ErrEmptyVertexID.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the in-degree, out-degree and undirected degree of id.
//
// Directed edges contribute to in/out; undirected edges to undirected
// (a self-loop counts twice, matching the handshake convention).
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)) for outgoing + O(E) for incoming on directed graphs.
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			if e.From == id {
				out++
			}
			if e.To == id {
				in++
			}
			continue
		}
		if e.From == id {
			undirected++
		}
		if e.To == id {
			undirected++
		}
	}

	return in, out, undirected, nil
}
