// SPDX-License-Identifier: MIT

package diffusion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netim/diffusion"
	"github.com/katalvlaran/netim/internal/fixture"
	"github.com/katalvlaran/netim/network"
)

func TestLT_FullWeightChain(t *testing.T) {
	for _, policy := range []diffusion.ThresholdPolicy{diffusion.PerRound, diffusion.PerRun, diffusion.LiveEdge} {
		e, err := diffusion.New(fixture.Chain(t, 4, 1), diffusion.LT, []int{0},
			diffusion.WithSeed(9), diffusion.WithThresholdPolicy(policy))
		require.NoError(t, err, policy.String())
		require.Equal(t, []int{0, 1, 2, 3}, e.Run(0), policy.String())
	}
}

func TestLT_AccumulatesInfluence(t *testing.T) {
	// Node 2 needs both parents: 0.3 + 0.3 clears any threshold in [0.5,0.6).
	g, err := network.FromEdges(3, true, []network.Edge{
		{From: 0, To: 2, Weight: 0.3},
		{From: 1, To: 2, Weight: 0.3},
	})
	require.NoError(t, err)

	for _, policy := range []diffusion.ThresholdPolicy{diffusion.PerRound, diffusion.PerRun} {
		e, err := diffusion.New(g, diffusion.LT, []int{0},
			diffusion.WithSeed(1),
			diffusion.WithThresholdPolicy(policy),
			diffusion.WithThresholdRange(0.5, 0.6))
		require.NoError(t, err)
		require.Equal(t, []int{0}, e.Run(0))

		require.NoError(t, e.Reset([]int{0, 1}))
		require.Equal(t, []int{0, 1, 2}, e.Run(0))
	}
}

func TestLT_StaggeredParents(t *testing.T) {
	// 0→1 (1.0), 0→2 (0.3), 1→2 (0.3): node 2 sees 0.3 in round 1, then
	// 0.6 in round 2 once node 1 is active.
	g, err := network.FromEdges(3, true, []network.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 0.3},
		{From: 1, To: 2, Weight: 0.3},
	})
	require.NoError(t, err)
	e, err := diffusion.New(g, diffusion.LT, []int{0},
		diffusion.WithSeed(4), diffusion.WithThresholdRange(0.5, 0.6))
	require.NoError(t, err)
	require.Equal(t, []int{1}, e.Step())
	require.Equal(t, []int{2}, e.Step())
}

func TestLT_LiveEdgeFollowsSingleParent(t *testing.T) {
	// Node 2's in-weights sum to 1, so exactly one of 0 and 1 is its live
	// parent in every world; seeding both always reaches it.
	g, err := network.FromEdges(3, true, []network.Edge{
		{From: 0, To: 2, Weight: 0.4},
		{From: 1, To: 2, Weight: 0.6},
	})
	require.NoError(t, err)

	e, err := diffusion.New(g, diffusion.LT, []int{0, 1},
		diffusion.WithSeed(2), diffusion.WithThresholdPolicy(diffusion.LiveEdge))
	require.NoError(t, err)
	hits := 0
	for trial := int64(0); trial < 400; trial++ {
		e.Seed(trial)
		require.NoError(t, e.Reset([]int{0, 1}))
		require.Equal(t, []int{0, 1, 2}, e.Run(0))

		e.Seed(trial)
		require.NoError(t, e.Reset([]int{0}))
		if len(e.Run(0)) == 3 {
			hits++
		}
	}
	require.InDelta(t, 0.4, float64(hits)/400, 0.1)
}

func TestLT_LiveEdgePolicyName(t *testing.T) {
	require.Equal(t, "live-edge", diffusion.LiveEdge.String())
	_, err := diffusion.New(fixture.Chain(t, 2, 1), diffusion.LT, []int{0},
		diffusion.WithThresholdPolicy(diffusion.ThresholdPolicy(7)))
	require.ErrorIs(t, err, diffusion.ErrOptionViolation)
}

func TestSI_CompleteGraph(t *testing.T) {
	e, err := diffusion.New(fixture.Complete(t, 6, 1), diffusion.SI, []int{2},
		diffusion.WithSeed(1), diffusion.WithBeta(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, e.Run(0))
	require.Equal(t, 1, e.Round())
	require.Equal(t, diffusion.Infected, e.State(0))
}

func TestSI_StopsAtFixedPoint(t *testing.T) {
	// Directed chain: once node 3 is infected nothing is reachable from the
	// infected set any more, although node 0 stays susceptible.
	g := fixture.Chain(t, 4, 1)
	e, err := diffusion.New(g, diffusion.SI, []int{1}, diffusion.WithSeed(1), diffusion.WithBeta(1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, e.Run(0))
	require.True(t, e.Done())

	e, err = diffusion.New(g, diffusion.SI, []int{0}, diffusion.WithBeta(0))
	require.NoError(t, err)
	require.Equal(t, []int{0}, e.Run(0))
	require.Equal(t, 0, e.Round())
}

func TestSI_DerivedBeta(t *testing.T) {
	g := fixture.Complete(t, 6, 1)
	thr, err := network.InfectionThreshold(g)
	require.NoError(t, err)

	e, err := diffusion.New(g, diffusion.SI, []int{0})
	require.NoError(t, err)
	require.InDelta(t, thr*diffusion.BetaSafetyMargin, e.Beta(), 1e-12)
}

func TestSIR_Dynamics(t *testing.T) {
	g := fixture.UndirectedPath(t, 3, 1)

	// Immediate recovery happens before any infection attempt.
	e, err := diffusion.New(g, diffusion.SIR, []int{0},
		diffusion.WithSeed(1), diffusion.WithBeta(1), diffusion.WithGamma(1), diffusion.WithRecordStates())
	require.NoError(t, err)
	require.Equal(t, []int{0}, e.Run(0))
	require.Equal(t, diffusion.Recovered, e.State(0))
	require.Equal(t, diffusion.Susceptible, e.State(1))
	h := e.History()
	require.Len(t, h, 2)
	require.Equal(t, []int{0}, h[1].Recovered)

	// Nobody recovers: the whole path gets infected, then Run stops.
	e, err = diffusion.New(g, diffusion.SIR, []int{0},
		diffusion.WithSeed(1), diffusion.WithBeta(1), diffusion.WithGamma(0))
	require.NoError(t, err)
	require.Empty(t, e.Run(0))
	require.Equal(t, 2, e.Round())
	for v := 0; v < 3; v++ {
		require.Equal(t, diffusion.Infected, e.State(v))
	}
}

func TestSIR_RoundLimit(t *testing.T) {
	e, err := diffusion.New(fixture.UndirectedPath(t, 10, 1), diffusion.SIR, []int{0},
		diffusion.WithSeed(1), diffusion.WithBeta(1), diffusion.WithGamma(1))
	require.NoError(t, err)
	e.Run(1)
	require.Equal(t, 1, e.Round())
	require.Equal(t, []int{0}, e.Outcome())
}
