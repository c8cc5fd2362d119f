// SPDX-License-Identifier: MIT

package montecarlo_test

import (
	"fmt"

	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/montecarlo"
	"github.com/katalvlaran/netim/network"
)

// ExampleEstimate estimates the spread of the hub of a star whose two
// spokes fire with probability 1 and 0.
func ExampleEstimate() {
	g, _ := network.FromEdges(3, true, []network.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 0},
	})
	mean, err := montecarlo.Estimate(g, diffusion.IC, []int{0}, 100,
		montecarlo.WithSeed(1), montecarlo.WithWorkers(4))
	fmt.Println(mean, err)
	// Output:
	// 2 <nil>
}
