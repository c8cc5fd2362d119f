// SPDX-License-Identifier: MIT

package network_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netim/core"
	"github.com/katalvlaran/netim/network"
)

type SnapshotSuite struct {
	suite.Suite
	directed   *network.Snapshot
	undirected *network.Snapshot
}

func (s *SnapshotSuite) SetupTest() {
	var err error
	s.directed, err = network.FromEdges(4, true, []network.Edge{
		{From: 0, To: 2, Weight: 0.5},
		{From: 0, To: 1, Weight: 0.25},
		{From: 2, To: 1, Weight: 1},
		{From: 3, To: 3, Weight: 0.1},
	})
	s.Require().NoError(err)

	s.undirected, err = network.FromEdges(3, false, []network.Edge{
		{From: 1, To: 0, Weight: 0.3},
		{From: 1, To: 2, Weight: 0.6},
	})
	s.Require().NoError(err)
}

func (s *SnapshotSuite) TestDirectedRows() {
	g := s.directed
	s.Require().True(g.IsDirected())
	s.Require().Equal(4, g.NumberOfNodes())
	s.Require().Equal([]int{1, 2}, g.Neighbors(0))
	s.Require().Equal([]float64{0.25, 0.5}, g.OutWeights(0))
	s.Require().Equal([]int{0, 2}, g.InNeighbors(1))
	s.Require().Equal([]float64{0.25, 1}, g.InWeights(1))
	s.Require().Equal(2, g.InDegree(1))
	s.Require().Equal(0, g.OutDegree(1))
	s.Require().Equal(2, g.Degree(1))
	s.Require().Equal(2, g.Degree(3), "self-loop counts as in and out")

	w, ok := g.Weight(2, 1)
	s.Require().True(ok)
	s.Require().Equal(1.0, w)
	_, ok = g.Weight(1, 2)
	s.Require().False(ok)

	s.Require().Equal([]network.Edge{
		{From: 0, To: 1, Weight: 0.25},
		{From: 0, To: 2, Weight: 0.5},
		{From: 2, To: 1, Weight: 1},
		{From: 3, To: 3, Weight: 0.1},
	}, g.Edges())
}

func (s *SnapshotSuite) TestUndirectedRows() {
	g := s.undirected
	s.Require().Equal([]int{0, 2}, g.Neighbors(1))
	s.Require().Equal(g.Neighbors(1), g.InNeighbors(1))
	s.Require().Equal(2, g.Degree(1))
	w, ok := g.Weight(0, 1)
	s.Require().True(ok)
	s.Require().Equal(0.3, w)
	s.Require().Len(g.Edges(), 2)
	for _, e := range g.Edges() {
		s.Require().LessOrEqual(e.From, e.To)
	}
}

func (s *SnapshotSuite) TestEdgesReturnsCopy() {
	g := s.directed
	edges := g.Edges()
	edges[0] = network.Edge{From: 3, To: 0, Weight: 9}
	_ = append(edges[:1], edges[2:]...)

	s.Require().Len(g.Edges(), 4)
	s.Require().Equal(network.Edge{From: 0, To: 1, Weight: 0.25}, g.Edges()[0])
	s.Require().Equal(network.Edge{From: 0, To: 2, Weight: 0.5}, g.Edges()[1])
	_, ok := g.Weight(3, 0)
	s.Require().False(ok)
}

func (s *SnapshotSuite) TestRejectsBadInput() {
	_, err := network.FromEdges(2, true, []network.Edge{{From: 0, To: 2}})
	s.Require().ErrorIs(err, network.ErrNodeOutOfRange)

	_, err = network.FromEdges(2, false, []network.Edge{{From: 0, To: 1}, {From: 1, To: 0}})
	s.Require().ErrorIs(err, network.ErrParallelEdges)
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSuite))
}

func TestFromCore_NaturalOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge(fmt.Sprint(i), fmt.Sprint(i+1), 0.5)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("hub"))

	s, err := network.FromCore(g)
	require.NoError(t, err)
	require.Equal(t, 13, s.NumberOfNodes())
	for i := 0; i < 12; i++ {
		require.Equal(t, fmt.Sprint(i), s.Label(i))
	}
	idx, ok := s.Index("hub")
	require.True(t, ok)
	require.Equal(t, 12, idx)
	require.Equal(t, []int{11}, s.Neighbors(10))
	require.Equal(t, []string{"3", "hub"}, s.Labels([]int{3, 12}))
}

func TestFromCore_RejectsMultigraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	_, err = network.FromCore(g)
	require.ErrorIs(t, err, network.ErrParallelEdges)
	_, err = network.FromCore(nil)
	require.ErrorIs(t, err, network.ErrNilGraph)
}

func TestGonumRoundTrip(t *testing.T) {
	src := simple.NewWeightedDirectedGraph(0, 0)
	for _, e := range []struct {
		u, v int64
		w    float64
	}{{10, 20, 0.5}, {20, 30, 0.75}, {10, 30, 0.1}} {
		src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(e.u), simple.Node(e.v), e.w))
	}

	s, err := network.FromGonum(src)
	require.NoError(t, err)
	require.True(t, s.IsDirected())
	require.Equal(t, []string{"10", "20", "30"}, s.Labels(s.Nodes()))
	require.Equal(t, []int{1, 2}, s.Neighbors(0))
	w, ok := s.Weight(1, 2)
	require.True(t, ok)
	require.Equal(t, 0.75, w)

	back := network.ToGonum(s)
	bw, ok := back.Weight(0, 2)
	require.True(t, ok)
	require.Equal(t, 0.1, bw)

	und := simple.NewUndirectedGraph()
	und.SetEdge(und.NewEdge(simple.Node(1), simple.Node(2)))
	us, err := network.FromGonum(und)
	require.NoError(t, err)
	require.False(t, us.IsDirected())
	w, ok = us.Weight(1, 0)
	require.True(t, ok)
	require.Equal(t, 1.0, w)
}
