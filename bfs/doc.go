// Package bfs provides breadth-first traversal over a network.View, in the
// forward (successor) or reverse (predecessor) direction.
//
// What
//
//   - Walker: a reusable traversal bound to one view. Visited marks use
//     generation stamps, so a walk costs O(visited + scanned edges) rather
//     than O(n), which matters when thousands of short walks run back to back
//     (reverse-reachable sampling).
//   - BFS: a one-shot convenience returning visit order and depths.
//   - Neighbor filtering receives the edge weight, so a filter can be a
//     Bernoulli trial: a reverse walk whose filter is `rng.Float64() < w`
//     samples the independent-cascade reverse-reachable set of its source.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Rows of a network.Snapshot are sorted by node id and neighbors are
//	enqueued in that order, so for a deterministic filter the visit sequence
//	is fully reproducible.
//
// Complexity (V = |nodes reached|, E = |edges scanned|)
//
//   - Time:   O(V + E)
//   - Memory: O(n) per Walker, allocated once.
//
// Usage
//
//	w, err := bfs.NewWalker(g,
//	    bfs.WithDirection(bfs.Reverse),
//	    bfs.WithFilterNeighbor(func(curr, nbr int, wt float64) bool {
//	        return rng.Float64() < wt
//	    }),
//	)
//	rr, err := w.Walk(root)
//
// Errors
//
//   - ErrGraphNil             if the view is nil.
//   - ErrStartVertexNotFound  if a source lies outside [0, n).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Context errors when the walk is cancelled.
package bfs
