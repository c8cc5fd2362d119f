// SPDX-License-Identifier: MIT

package ris

import (
	"container/heap"
	"fmt"
)

// CoverageIndex is the incremental max-coverage state over a fixed list of
// RR sets. count[v] always equals the number of not yet covered sets in
// members[v].
type CoverageIndex struct {
	sets    [][]int
	members [][]int
	count   []int
	covered []bool
	removed int
}

// NewCoverageIndex indexes rrSets over nodes [0, n). The sets are read, not
// copied, and must not change while the index is in use.
//
// Errors: ErrNodeOutOfRange.
// Complexity: O(n + Σ|R|).
func NewCoverageIndex(n int, rrSets [][]int) (*CoverageIndex, error) {
	c := &CoverageIndex{
		sets:    rrSets,
		members: make([][]int, n),
		count:   make([]int, n),
		covered: make([]bool, len(rrSets)),
	}
	for i, set := range rrSets {
		for _, v := range set {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("NewCoverageIndex: set %d node %d (n=%d): %w", i, v, n, ErrNodeOutOfRange)
			}
			c.members[v] = append(c.members[v], i)
			c.count[v]++
		}
	}

	return c, nil
}

// Count returns the number of uncovered sets containing v.
func (c *CoverageIndex) Count(v int) int { return c.count[v] }

// TotalCount returns Σ Count(v).
func (c *CoverageIndex) TotalCount() int {
	total := 0
	for _, k := range c.count {
		total += k
	}

	return total
}

// Removed returns the number of sets covered so far.
func (c *CoverageIndex) Removed() int { return c.removed }

// Len returns the number of indexed sets.
func (c *CoverageIndex) Len() int { return len(c.sets) }

// Select greedily adds up to k nodes, each covering the most uncovered
// sets (ties to the smaller id), and stops early once nothing is left to
// cover. Selection continues from the index's current state; Covered and
// Ratio count every set covered so far.
//
// Implementation:
//   - Stage 1: heap of (count, node) for every node with a positive count.
//   - Stage 2: pop; a stale entry (count dropped since push) is pushed
//     back with its current count, a fresh one is accepted.
//   - Stage 3: mark every uncovered set of the accepted node covered and
//     decrement the count of each of its members.
//
// Complexity: O(Σ|R| + n log n) over the whole selection.
func (c *CoverageIndex) Select(k int) Selection {
	h := make(countHeap, 0, len(c.count))
	for v, cnt := range c.count {
		if cnt > 0 {
			h = append(h, countEntry{node: v, count: cnt})
		}
	}
	heap.Init(&h)

	seeds := make([]int, 0, k)
	for len(seeds) < k && h.Len() > 0 {
		top := heap.Pop(&h).(countEntry)
		cur := c.count[top.node]
		if cur == 0 {
			continue
		}
		if cur != top.count {
			top.count = cur
			heap.Push(&h, top)
			continue
		}
		seeds = append(seeds, top.node)
		c.cover(top.node)
	}

	sel := Selection{Seeds: seeds, Covered: c.removed}
	if len(c.sets) > 0 {
		sel.Ratio = float64(c.removed) / float64(len(c.sets))
	}

	return sel
}

func (c *CoverageIndex) cover(v int) {
	for _, i := range c.members[v] {
		if c.covered[i] {
			continue
		}
		c.covered[i] = true
		c.removed++
		for _, u := range c.sets[i] {
			c.count[u]--
		}
	}
}

// Select runs greedy max-coverage for k seeds on a fresh index.
func Select(n int, rrSets [][]int, k int) (Selection, error) {
	c, err := NewCoverageIndex(n, rrSets)
	if err != nil {
		return Selection{}, err
	}

	return c.Select(k), nil
}

type countEntry struct {
	node, count int
}

// countHeap is a max-heap by count, ties by smaller node id.
type countHeap []countEntry

func (h countHeap) Len() int { return len(h) }
func (h countHeap) Less(i, j int) bool {
	if h[i].count != h[j].count {
		return h[i].count > h[j].count
	}
	return h[i].node < h[j].node
}
func (h countHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *countHeap) Push(x any)   { *h = append(*h, x.(countEntry)) }
func (h *countHeap) Pop() any {
	old := *h
	e := old[len(old)-1]
	*h = old[:len(old)-1]
	return e
}
