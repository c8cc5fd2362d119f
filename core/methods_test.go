// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netim/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	require.Equal(t, []string{"a", "b"}, g.Vertices())
	require.Equal(t, 2, g.VertexCount())
	require.True(t, g.HasVertex("a"))
	require.False(t, g.HasVertex("c"))
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0.5)
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("a", "a", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "a", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "a", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected edges are mirrored")

	m := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, err = m.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = m.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = m.AddEdge("a", "a", 0)
	require.NoError(t, err)
	require.Equal(t, 3, m.EdgeCount())
}

func TestGraph_DirectedNeighborhoods(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"c", "b"}} {
		_, err := g.AddEdge(e[0], e[1], 0.25)
		require.NoError(t, err)
	}
	require.True(t, g.HasEdge("a", "b"))
	require.False(t, g.HasEdge("b", "a"))

	out, err := g.NeighborIDs("a")
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, out)

	in, err := g.InNeighborIDs("b")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, in)

	di, do, du, err := g.Degree("b")
	require.NoError(t, err)
	require.Equal(t, [3]int{2, 0, 0}, [3]int{di, do, du})

	_, err = g.Neighbors("zz")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_UndirectedNeighborhoods(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("x", "y", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("y", "z", 1)
	require.NoError(t, err)

	in, err := g.InNeighborIDs("y")
	require.NoError(t, err)
	out, err := g.NeighborIDs("y")
	require.NoError(t, err)
	require.Equal(t, out, in)
	require.Equal(t, []string{"x", "z"}, out)

	_, _, du, err := g.Degree("y")
	require.NoError(t, err)
	require.Equal(t, 2, du)
}

func TestGraph_SetEdgeWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, err := g.AddEdge("a", "b", 0.1)
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeWeight(eid, 0.9))
	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	require.InDelta(t, 0.9, e.Weight, 1e-12)
	require.ErrorIs(t, g.SetEdgeWeight("e404", 0.1), core.ErrEdgeNotFound)
	require.True(t, g.HasEdge("a", "b"))
	require.False(t, g.HasEdge("b", "a"))
}

func TestGraph_EdgesInCreationOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(fmt.Sprint(i), fmt.Sprint(i+1), 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		require.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
	}
}

func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("a", "b", 0.5)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 0.25)
	require.NoError(t, err)
	eid, err := g.AddEdge("c", "a", 0.125)
	require.NoError(t, err)
	require.Equal(t, "e3", eid)

	st := g.Stats()
	require.True(t, st.Directed)
	require.True(t, st.Weighted)
	require.Equal(t, 3, st.VertexCount)
	require.Equal(t, 3, st.EdgeCount)
	require.InDelta(t, 0.875, st.TotalWeight, 1e-12)

	require.NoError(t, g.SetEdgeWeight(eid, 0.25))
	require.InDelta(t, 1.0, g.Stats().TotalWeight, 1e-12)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, err := g.AddEdge(fmt.Sprintf("w%d", w), fmt.Sprintf("v%d", i), 0)
				require.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, 400, g.EdgeCount())
}
