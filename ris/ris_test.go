// SPDX-License-Identifier: MIT

package ris_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netim/builder"
	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/internal/fixture"
	"github.com/katalvlaran/netim/ris"
)

func TestRIS_Chain(t *testing.T) {
	res, err := ris.RIS(fixture.Chain(t, 3, 1), diffusion.IC, 1, 2000, ris.WithSeed(5))
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Seeds)
	require.GreaterOrEqual(t, res.Coverage, 0.9)
	require.Equal(t, 2000, res.Samples)
}

func TestRIS_Deterministic(t *testing.T) {
	g := fixture.Random(t, 150, 0.04, 1, builder.WeightedCascade)
	for _, model := range []diffusion.Model{diffusion.IC, diffusion.LT} {
		a, err := ris.RIS(g, model, 4, 3000, ris.WithSeed(11))
		require.NoError(t, err)
		b, err := ris.RIS(g, model, 4, 3000, ris.WithSeed(11), ris.WithWorkers(4))
		require.NoError(t, err)
		require.Equal(t, a, b, model.String())
	}
}

func TestIMM_Deterministic(t *testing.T) {
	g := fixture.Random(t, 100, 0.05, 6, builder.WeightedCascade)
	a, err := ris.IMM(g, diffusion.IC, 3, ris.WithSeed(2))
	require.NoError(t, err)
	b, err := ris.IMM(g, diffusion.IC, 3, ris.WithSeed(2), ris.WithParallel())
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a.Seeds, 3)
	require.GreaterOrEqual(t, a.LowerBound, 1.0)
	require.LessOrEqual(t, int(math.Ceil(a.Theta)), a.Samples)
}

func TestIMM_Chain(t *testing.T) {
	for _, model := range []diffusion.Model{diffusion.IC, diffusion.LT} {
		res, err := ris.IMM(fixture.Chain(t, 3, 1), model, 1, ris.WithSeed(3))
		require.NoError(t, err)
		require.Equal(t, []int{0}, res.Seeds, model.String())
		require.Equal(t, 1.0, res.Coverage)
	}
}

func TestIMM_TrivialBudgets(t *testing.T) {
	res, err := ris.IMM(fixture.Chain(t, 4, 0.5), diffusion.LT, 4, ris.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, res.Seeds)
	require.Zero(t, res.Samples)
}

func TestThetaStar_ClosedForm(t *testing.T) {
	const n, k, eps, ell = 1000, 10, 0.3, 1.0
	nf := float64(n)
	lg := math.Lgamma
	lf := func(x float64) float64 { v, _ := lg(x + 1); return v }
	logC := lf(nf) - lf(k) - lf(nf-k)
	alpha := math.Sqrt(ell*math.Log(nf) + math.Log(2))
	beta := math.Sqrt((1 - 1/math.E) * (logC + ell*math.Log(nf) + math.Log(2)))
	lambdaStar := 2 * nf * math.Pow((1-1/math.E)*alpha+beta, 2) / (eps * eps)
	const lb = 37.5

	require.InEpsilon(t, lambdaStar/lb, ris.ThetaStar(n, k, eps, ell, lb), 1e-9)
	require.InEpsilon(t, lambdaStar, ris.LambdaStar(n, k, eps, ell), 1e-9)

	epsP := eps * math.Sqrt(2)
	lambdaP := (2 + 2*epsP/3) * (logC + ell*math.Log(nf) + math.Log(math.Log2(nf))) * nf / (epsP * epsP)
	require.InEpsilon(t, lambdaP, ris.LambdaPrime(n, k, eps, ell), 1e-9)
}

func TestLogBinomial(t *testing.T) {
	require.InDelta(t, math.Log(120), ris.LogBinomial(10, 3), 1e-12)
	require.InDelta(t, ris.LogBinomial(50, 7), ris.LogBinomial(50, 43), 1e-9)
	require.Zero(t, ris.LogBinomial(9, 0))
	require.Zero(t, ris.LogBinomial(9, 9))
	require.True(t, math.IsInf(ris.LogBinomial(3, 4), -1))
	// C(5000, 2500) overflows float64, its logarithm does not.
	require.False(t, math.IsInf(ris.LogBinomial(5000, 2500), 0))
	require.InDelta(t, 1.5, ris.AdjustedEll(1, 4), 1e-12)
}

func TestErrors(t *testing.T) {
	g := fixture.Chain(t, 3, 1)
	_, err := ris.RIS(g, diffusion.SI, 1, 10)
	require.ErrorIs(t, err, ris.ErrUnsupportedModel)
	_, err = ris.RIS(g, diffusion.IC, 0, 10)
	require.ErrorIs(t, err, ris.ErrBadBudget)
	_, err = ris.RIS(g, diffusion.IC, 1, 0)
	require.ErrorIs(t, err, ris.ErrBadSampleCount)
	_, err = ris.RIS(nil, diffusion.IC, 1, 10)
	require.ErrorIs(t, err, ris.ErrNilGraph)
	_, err = ris.RIS(g, diffusion.IC, 1, 10, ris.WithWorkers(-2))
	require.ErrorIs(t, err, ris.ErrOptionViolation)

	_, err = ris.IMM(g, diffusion.IC, 4)
	require.ErrorIs(t, err, ris.ErrBadBudget)
	_, err = ris.IMM(g, diffusion.IC, 1, ris.WithEpsilon(1.5))
	require.ErrorIs(t, err, ris.ErrBadEpsilon)
	_, err = ris.IMM(g, diffusion.IC, 1, ris.WithEll(0))
	require.ErrorIs(t, err, ris.ErrBadEll)
	_, err = ris.IMM(g, diffusion.SIR, 1)
	require.ErrorIs(t, err, ris.ErrUnsupportedModel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ris.RIS(g, diffusion.IC, 1, 10, ris.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
