package bfs

import (
	"fmt"

	"github.com/katalvlaran/netim/network"
)

// Walker performs repeated breadth-first traversals over one view.
// A Walker is not safe for concurrent use; give each goroutine its own.
type Walker struct {
	graph network.View
	opts  BFSOptions
	stamp []uint32 // stamp[v] == gen marks v visited in the current walk
	gen   uint32
	depth []int
	queue []int
}

// NewWalker binds a Walker to g.
// Returns ErrGraphNil or ErrOptionViolation.
func NewWalker(g network.View, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NumberOfNodes()

	return &Walker{
		graph: g,
		opts:  o,
		stamp: make([]uint32, n),
		depth: make([]int, n),
		queue: make([]int, 0, 16),
	}, nil
}

// Walk traverses from all sources at depth 0 and returns a fresh slice of
// visited nodes in visit order. Duplicate sources are visited once.
func (w *Walker) Walk(sources ...int) ([]int, error) {
	n := w.graph.NumberOfNodes()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d (n=%d)", ErrStartVertexNotFound, s, n)
		}
	}
	w.nextGen()

	w.queue = w.queue[:0]
	for _, s := range sources {
		if w.stamp[s] != w.gen {
			w.mark(s, 0)
		}
	}

	ctx := w.opts.Ctx
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		curr := w.queue[head]
		d := w.depth[curr]
		if w.opts.OnVisit != nil {
			w.opts.OnVisit(curr, d)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}

		var nbrs []int
		var ws []float64
		if w.opts.Direction == Reverse {
			nbrs, ws = w.graph.InNeighbors(curr), w.graph.InWeights(curr)
		} else {
			nbrs, ws = w.graph.Neighbors(curr), w.graph.OutWeights(curr)
		}
		for i, nbr := range nbrs {
			if w.stamp[nbr] == w.gen {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(curr, nbr, ws[i]) {
				continue
			}
			w.mark(nbr, d+1)
		}
	}

	out := make([]int, len(w.queue))
	copy(out, w.queue)

	return out, nil
}

// Depth returns the depth of v in the last walk, or -1 if v was not reached.
func (w *Walker) Depth(v int) int {
	if v < 0 || v >= len(w.stamp) || w.stamp[v] != w.gen || w.gen == 0 {
		return -1
	}

	return w.depth[v]
}

func (w *Walker) mark(v, d int) {
	w.stamp[v] = w.gen
	w.depth[v] = d
	w.queue = append(w.queue, v)
}

// nextGen advances the stamp generation, clearing marks on wrap-around.
func (w *Walker) nextGen() {
	w.gen++
	if w.gen == 0 {
		for i := range w.stamp {
			w.stamp[i] = 0
		}
		w.gen = 1
	}
}

// BFS runs a single traversal from sources and returns order and depths.
func BFS(g network.View, sources []int, opts ...Option) (*BFSResult, error) {
	w, err := NewWalker(g, opts...)
	if err != nil {
		return nil, err
	}
	order, err := w.Walk(sources...)
	if err != nil {
		return nil, err
	}
	res := &BFSResult{Order: order, Depth: make(map[int]int, len(order))}
	for _, v := range order {
		res.Depth[v] = w.depth[v]
	}

	return res, nil
}
