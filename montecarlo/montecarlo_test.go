// SPDX-License-Identifier: MIT

package montecarlo_test

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netim/builder"
	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/internal/fixture"
	"github.com/katalvlaran/netim/montecarlo"
)

func TestEstimate_CertainChain(t *testing.T) {
	s, err := montecarlo.Run(fixture.Chain(t, 3, 1), diffusion.IC, []int{0}, 25, montecarlo.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 3.0, s.Mean)
	require.Equal(t, 0.0, s.StdDev)
	require.Equal(t, 25, s.Trials)
}

func TestEstimate_Deterministic(t *testing.T) {
	g := fixture.Random(t, 80, 0.06, 5, builder.WeightedCascade)
	seeds := []int{0, 7, 19}
	for _, model := range []diffusion.Model{diffusion.IC, diffusion.LT} {
		a, err := montecarlo.Estimate(g, model, seeds, 40, montecarlo.WithSeed(9))
		require.NoError(t, err)
		b, err := montecarlo.Estimate(g, model, seeds, 40, montecarlo.WithSeed(9))
		require.NoError(t, err)
		require.Equal(t, a, b, model.String())
	}
}

func TestEstimate_ParallelMatchesSequential(t *testing.T) {
	g := fixture.Random(t, 80, 0.06, 5, builder.WeightedCascade)
	seeds := []int{1, 2}
	seq, err := montecarlo.Run(g, diffusion.IC, seeds, 37, montecarlo.WithSeed(4))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8, 64} {
		par, err := montecarlo.Run(g, diffusion.IC, seeds, 37,
			montecarlo.WithSeed(4), montecarlo.WithWorkers(w))
		require.NoError(t, err)
		require.Equal(t, seq, par, "workers=%d", w)
	}
}

func TestEstimate_StarConverges(t *testing.T) {
	const m, p = 20, 0.3
	s, err := montecarlo.Run(fixture.Star(t, m, p), diffusion.IC, []int{0}, 4000,
		montecarlo.WithSeed(1), montecarlo.WithParallel())
	require.NoError(t, err)
	require.InDelta(t, 1+m*p, s.Mean, 0.2)
	require.Less(t, s.StdErr, 0.1)
}

func TestEstimate_Epidemic(t *testing.T) {
	g := fixture.Complete(t, 8, 1)
	mean, err := montecarlo.Estimate(g, diffusion.SIR, []int{0}, 50,
		montecarlo.WithSeed(2),
		montecarlo.WithDiffusionOptions(diffusion.WithBeta(1), diffusion.WithGamma(1)))
	require.NoError(t, err)
	require.Equal(t, 1.0, mean, "the seed recovers before infecting anyone")

	mean, err = montecarlo.Estimate(g, diffusion.SI, []int{0}, 10,
		montecarlo.WithSeed(2), montecarlo.WithMaxRounds(1),
		montecarlo.WithDiffusionOptions(diffusion.WithBeta(1)))
	require.NoError(t, err)
	require.Equal(t, 8.0, mean)
}

func TestRunEngine(t *testing.T) {
	e, err := diffusion.New(fixture.Chain(t, 4, 1), diffusion.IC, []int{1})
	require.NoError(t, err)

	s, err := montecarlo.RunEngine(e, 6, montecarlo.WithSeed(1), montecarlo.WithWorkers(3))
	require.NoError(t, err)
	require.Equal(t, 3.0, s.Mean)
	require.Equal(t, []int{1}, e.Outcome(), "parallel trials run on clones")

	mean, err := montecarlo.EstimateEngine(e, 1, montecarlo.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 3.0, mean)
	require.Equal(t, []int{1, 2, 3}, e.Outcome(), "sequential trials reuse the engine")
}

func TestRunEngine_ReseedsInjectedSource(t *testing.T) {
	src := rand.New(rand.NewSource(77))
	e, err := diffusion.New(fixture.Star(t, 6, 0.5), diffusion.IC, []int{0}, diffusion.WithRand(src))
	require.NoError(t, err)

	_, err = montecarlo.RunEngine(e, 4, montecarlo.WithSeed(10))
	require.NoError(t, err)

	// The last trial seeded base+3, and its Reset drew one world key.
	ref := rand.New(rand.NewSource(13))
	ref.Uint64()
	require.Equal(t, ref.Int63(), src.Int63())
}

func TestSummary_Total(t *testing.T) {
	s, err := montecarlo.Run(fixture.Star(t, 9, 0.4), diffusion.IC, []int{0}, 30, montecarlo.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, s.Total, math.Round(s.Total), "sizes are whole numbers")
	require.InDelta(t, s.Mean, s.Total/30, 1e-9)

	one, err := montecarlo.Run(fixture.Chain(t, 3, 1), diffusion.IC, []int{0}, 1, montecarlo.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 3.0, one.Total)
}

func TestErrors(t *testing.T) {
	g := fixture.Chain(t, 3, 1)
	_, err := montecarlo.Run(g, diffusion.IC, []int{0}, 0)
	require.ErrorIs(t, err, montecarlo.ErrBadRounds)
	_, err = montecarlo.Run(g, diffusion.IC, []int{0}, 5, montecarlo.WithWorkers(0))
	require.ErrorIs(t, err, montecarlo.ErrOptionViolation)
	_, err = montecarlo.Run(g, diffusion.IC, []int{5}, 5)
	require.ErrorIs(t, err, diffusion.ErrSeedOutOfRange)
	_, err = montecarlo.RunEngine(nil, 5)
	require.ErrorIs(t, err, montecarlo.ErrNilEngine)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = montecarlo.Run(g, diffusion.IC, []int{0}, 5, montecarlo.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := montecarlo.Run(fixture.Chain(t, 3, 1), diffusion.IC, []int{0}, 3,
		montecarlo.WithSeed(1), montecarlo.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"message":"spread estimated"`)
	require.Contains(t, buf.String(), `"trials":3`)
}
