// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netim/builder"
)

func TestBuildNetwork_RandomIsReproducible(t *testing.T) {
	gc := GraphConfig{Kind: "random", Nodes: 40, P: 0.1, Directed: true, Weights: "tv"}
	a, _, err := buildNetwork(gc, 3)
	require.NoError(t, err)
	b, _, err := buildNetwork(gc, 3)
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		require.Contains(t, builder.TrivalencyLevels[:], e.Weight)
	}
}

func TestBuildNetwork_Rejects(t *testing.T) {
	_, _, err := buildNetwork(GraphConfig{Kind: "path", Nodes: 3, Weights: "constant", Weight: -0.5}, 1)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, _, err = buildNetwork(GraphConfig{Kind: "path", Nodes: 3, Weights: "constant", Weight: 1.5}, 1)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, _, err = buildNetwork(GraphConfig{Kind: "path", Nodes: 3, Weights: "degree"}, 1)
	require.ErrorIs(t, err, builder.ErrUnknownScheme)

	_, _, err = buildNetwork(GraphConfig{Kind: "cycle", Nodes: 2, Weights: "wc"}, 1)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuildNetwork_Stats(t *testing.T) {
	g, st, err := buildNetwork(GraphConfig{Kind: "star", Nodes: 5, Weights: "wc"}, 1)
	require.NoError(t, err)
	require.Equal(t, g.NumberOfNodes(), st.VertexCount)
	require.Equal(t, len(g.Edges()), st.EdgeCount)
	require.False(t, st.Directed)

	sum := 0.0
	for _, e := range g.Edges() {
		sum += e.Weight
	}
	require.InDelta(t, sum, st.TotalWeight, 1e-12)
}
