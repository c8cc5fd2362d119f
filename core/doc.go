// SPDX-License-Identifier: MIT

// Package core provides the mutable, thread-safe in-memory Graph that netim
// uses as its authoring container: callers (and the builder package) add
// vertices and weighted edges here, then freeze the result into an immutable
// network.Snapshot before running any diffusion or optimizer.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() is sorted lexicographically, Edges() and Neighbors() by Edge.ID,
//	NeighborIDs() and InNeighborIDs() lexicographically. Nothing depends on map
//	iteration order.
//
// Core Methods:
//
//	// Vertices
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//
//	// Edges
//	AddEdge(from, to string, weight float64) (string, error) // O(1)
//	SetEdgeWeight(edgeID string, weight float64) error       // O(1)
//
//	// Queries
//	Neighbors(id) / NeighborIDs(id) / InNeighborIDs(id)
//	Degree(id) (in, out, undirected int, err error)
//	Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Usage:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_, _ = g.AddEdge("0", "1", 0.4)
//	_, _ = g.AddEdge("1", "2", 0.7)
//	view, _ := network.FromCore(g)
package core
