// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/netim/core"
)

// ExampleGraph builds a small directed influence graph and inspects
// predecessors, which is what reverse sampling walks along.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("alice", "bob", 0.3)
	_, _ = g.AddEdge("carol", "bob", 0.6)
	_, _ = g.AddEdge("bob", "dave", 0.9)

	in, _ := g.InNeighborIDs("bob")
	out, _ := g.NeighborIDs("bob")
	fmt.Println(in, out, g.EdgeCount())
	// Output: [alice carol] [dave] 3
}
