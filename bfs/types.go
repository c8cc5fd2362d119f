// Package bfs provides tunable options and error definitions
// for breadth-first traversal over a network.View.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when a source lies outside the view.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil view is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Direction selects which adjacency a walk follows.
type Direction int

const (
	// Forward follows successors (Neighbors).
	Forward Direction = iota
	// Reverse follows predecessors (InNeighbors).
	Reverse
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the walker is built.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize traversal.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Direction selects successors (Forward) or predecessors (Reverse).
	Direction Direction

	// OnVisit is called when visiting a vertex with its depth.
	OnVisit func(v, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor is consulted once for every not-yet-visited neighbor;
	// returning false skips it. w is the weight of the traversed edge in
	// its original orientation (nbr→curr for Reverse walks).
	FilterNeighbor func(curr, nbr int, w float64) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
// background context, forward direction, no depth limit, no filter.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		Direction: Forward,
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects the adjacency to follow.
func WithDirection(d Direction) Option {
	return func(o *BFSOptions) {
		if d != Forward && d != Reverse {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, int(d))
			return
		}
		o.Direction = d
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(v, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, nbr int, w float64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a one-shot traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the nearest source.
type BFSResult struct {
	Order []int
	Depth map[int]int
}
