// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/netim/builder"
	"github.com/katalvlaran/netim/core"
)

// ExampleApplyWeights builds a directed star and assigns weighted-cascade
// weights: each leaf has a single parent, so every spoke gets weight 1.
func ExampleApplyWeights() {
	g, _ := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		nil,
		builder.Star(3),
	)
	_ = builder.ApplyWeights(g, builder.WeightedCascade)
	for _, e := range g.Edges() {
		fmt.Printf("%s->%s %.1f\n", e.From, e.To, e.Weight)
	}
	// Output:
	// 0->1 1.0
	// 0->2 1.0
}
