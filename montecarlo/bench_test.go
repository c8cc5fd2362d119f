// SPDX-License-Identifier: MIT

package montecarlo_test

import (
	"testing"

	"github.com/katalvlaran/netim/builder"
	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/internal/fixture"
	"github.com/katalvlaran/netim/montecarlo"
)

func BenchmarkEstimate(b *testing.B) {
	g := fixture.Random(b, 1000, 0.01, 1, builder.WeightedCascade)
	for _, w := range []int{1, 4} {
		w := w
		b.Run(map[int]string{1: "sequential", 4: "workers=4"}[w], func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = montecarlo.Estimate(g, diffusion.IC, []int{0, 1, 2}, 100,
					montecarlo.WithSeed(int64(i)), montecarlo.WithWorkers(w))
			}
		})
	}
}
