// SPDX-License-Identifier: MIT

// Package network provides the read-only graph capability that every
// diffusion engine and seed-selection optimizer in netim consumes.
//
// What
//
//   - View: the capability interface (nodes, edges with weights, successor
//     and predecessor iteration, degree queries, directedness).
//   - Snapshot: an immutable compressed-sparse-row implementation of View
//     over dense node ids [0, n). Successors and predecessors are stored in
//     separate CSR arrays, each row sorted by node id, with weights aligned
//     to the neighbor slices.
//   - Adapters: FromEdges (raw edge list), FromCore (core.Graph with string
//     IDs, ordered naturally), FromGonum (any gonum graph.Graph) and ToGonum.
//   - Degree statistics: DegreeStats and InfectionThreshold (the epidemic
//     threshold k̄/(k̄²−k̄) used to derive the SI/SIR infection rate).
//
// Why
//
//	Optimizers run millions of neighbor scans. A frozen CSR view removes
//	locking, map lookups and string IDs from the hot path, and can be
//	shared by any number of goroutines without synchronization.
//
// Semantics
//
//   - Undirected: InNeighbors(v) == Neighbors(v), Degree(v) == len(Neighbors(v)).
//   - Directed:   Degree(v) == InDegree(v) + OutDegree(v).
//   - Parallel edges are rejected (ErrParallelEdges); self-loops are kept.
//
// Complexity
//
//   - Construction: O(V + E log d) (per-row sort).
//   - Neighbors / InNeighbors / degrees: O(1).
//   - Weight(u, v): O(log d).
//
// Errors
//
//   - ErrNilGraph, ErrNodeOutOfRange, ErrParallelEdges, ErrBadWeight,
//     ErrWeightOutOfRange, ErrDegenerateDegrees.
package network
