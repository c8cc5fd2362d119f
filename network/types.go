// SPDX-License-Identifier: MIT

package network

import "errors"

// Sentinel errors for view construction and inspection.
var (
	// ErrNilGraph is returned when a nil source graph is supplied.
	ErrNilGraph = errors.New("network: graph is nil")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("network: node out of range")

	// ErrParallelEdges indicates two edges between the same ordered pair
	// (or unordered pair for undirected graphs).
	ErrParallelEdges = errors.New("network: parallel edges are not supported")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("network: weight is not finite")

	// ErrWeightOutOfRange indicates a weight used as a probability lies outside [0,1].
	ErrWeightOutOfRange = errors.New("network: weight outside [0,1]")

	// ErrDegenerateDegrees indicates the degree distribution does not yield a
	// positive epidemic threshold denominator (k̄² − k̄ <= 0).
	ErrDegenerateDegrees = errors.New("network: degenerate degree distribution")
)

// Edge is a weighted connection between two dense node ids.
type Edge struct {
	From, To int
	Weight   float64
}

// View is the read-only graph capability consumed by diffusion and
// optimization code. Node ids are dense in [0, NumberOfNodes()).
//
// Slices returned by View methods are owned by the view and must not be
// modified by callers.
type View interface {
	// NumberOfNodes returns n.
	NumberOfNodes() int
	// IsDirected reports whether edges are one-way.
	IsDirected() bool
	// Nodes returns 0..n-1.
	Nodes() []int
	// Edges returns every edge once; undirected edges as From <= To.
	// The slice belongs to the caller.
	Edges() []Edge
	// Neighbors returns the successors of v sorted ascending.
	Neighbors(v int) []int
	// InNeighbors returns the predecessors of v sorted ascending
	// (equal to Neighbors for undirected views).
	InNeighbors(v int) []int
	// OutWeights returns weight(v, Neighbors(v)[i]) at index i.
	OutWeights(v int) []float64
	// InWeights returns weight(InNeighbors(v)[i], v) at index i.
	InWeights(v int) []float64
	// Weight returns the weight of u→v and whether the edge exists.
	Weight(u, v int) (float64, bool)
	// Degree is InDegree+OutDegree for directed views, len(Neighbors) otherwise.
	Degree(v int) int
	// InDegree returns len(InNeighbors(v)).
	InDegree(v int) int
	// OutDegree returns len(Neighbors(v)).
	OutDegree(v int) int
}
