// SPDX-License-Identifier: MIT

package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/greedy"
	"github.com/katalvlaran/netim/network"
)

// ExampleCELF picks the two hubs of two disjoint stars.
func ExampleCELF() {
	var edges []network.Edge
	for v := 1; v <= 4; v++ {
		edges = append(edges, network.Edge{From: 0, To: v, Weight: 1})
	}
	edges = append(edges, network.Edge{From: 5, To: 6, Weight: 1}, network.Edge{From: 5, To: 7, Weight: 1})
	g, _ := network.FromEdges(8, true, edges)

	seeds, err := greedy.CELF(g, diffusion.IC, 2, 10, greedy.WithSeed(1))
	fmt.Println(seeds, err)
	// Output:
	// [0 5] <nil>
}
