// SPDX-License-Identifier: MIT

package ris_test

import (
	"testing"

	"github.com/katalvlaran/netim/builder"
	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/internal/fixture"
	"github.com/katalvlaran/netim/ris"
)

func BenchmarkIMM(b *testing.B) {
	g := fixture.Random(b, 2000, 0.003, 1, builder.Trivalency)
	for _, model := range []diffusion.Model{diffusion.IC, diffusion.LT} {
		model := model
		b.Run(model.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = ris.IMM(g, model, 10, ris.WithSeed(int64(i)), ris.WithParallel())
			}
		})
	}
}
