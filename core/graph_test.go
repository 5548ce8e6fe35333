package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/modgraph/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Unweighted, no loops by default; individual tests may override.
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"))
	require.False(s.g.HasVertex(""))

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotent.
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeIsDirected() {
	require := require.New(s.T())
	eid, err := s.g.AddEdge("A", "B", 0)
	require.NoError(err)
	require.Equal("e1", eid)

	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "endpoints are auto-added")
	require.True(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("B", "A"))

	// The reverse direction is a distinct edge.
	eid, err = s.g.AddEdge("B", "A", 0)
	require.NoError(err)
	require.Equal("e2", eid)
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgePolicies() {
	require := require.New(s.T())

	_, err := s.g.AddEdge("A", "B", 2)
	require.ErrorIs(err, core.ErrBadWeight)

	_, err = s.g.AddEdge("A", "A", 0)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge("", "A", 0)
	require.ErrorIs(err, core.ErrEmptyVertexID)

	_, err = s.g.AddEdge("A", "B", 0)
	require.NoError(err)
	_, err = s.g.AddEdge("A", "B", 0)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)

	// Loops stay rejected on weighted graphs too.
	_, err = core.NewGraph(core.WithWeighted()).AddEdge("A", "A", 1)
	require.ErrorIs(err, core.ErrLoopNotAllowed)
}

func (s *GraphSuite) TestWeightedEdges() {
	require := require.New(s.T())
	s.g = core.NewGraph(core.WithWeighted())
	require.True(s.g.Weighted())

	_, err := s.g.AddEdge("3", "7", complex(-1, 0))
	require.NoError(err)
	_, err = s.g.AddEdge("3", "5", complex(0, -1))
	require.NoError(err)

	e, err := s.g.Edge("3", "5")
	require.NoError(err)
	require.Equal(complex(0, -1), e.Weight)

	// Returned edges are copies.
	e.Weight = 42
	e, _ = s.g.Edge("3", "5")
	require.Equal(complex(0, -1), e.Weight)

	_, err = s.g.Edge("5", "3")
	require.ErrorIs(err, core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestNeighborsVerticesEdgesSorted() {
	require := require.New(s.T())
	for _, pair := range [][2]string{{"B", "D"}, {"B", "A"}, {"A", "C"}, {"B", "C"}} {
		_, err := s.g.AddEdge(pair[0], pair[1], 0)
		require.NoError(err)
	}

	require.Equal([]string{"A", "B", "C", "D"}, s.g.Vertices())

	nbs, err := s.g.NeighborIDs("B")
	require.NoError(err)
	require.Equal([]string{"A", "C", "D"}, nbs)

	nbs, err = s.g.NeighborIDs("D")
	require.NoError(err)
	require.Empty(nbs)

	_, err = s.g.NeighborIDs("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)

	var got [][2]string
	for _, e := range s.g.Edges() {
		got = append(got, [2]string{e.From, e.To})
	}
	require.Equal([][2]string{{"A", "C"}, {"B", "A"}, {"B", "C"}, {"B", "D"}}, got)
}

func (s *GraphSuite) TestMetadata() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("7"))
	require.NoError(s.g.SetMetadata("7", "prime", int64(7)))

	v, err := s.g.Vertex("7")
	require.NoError(err)
	require.Equal(int64(7), v.Metadata["prime"])

	// The copy does not alias the stored map.
	v.Metadata["prime"] = int64(0)
	v, _ = s.g.Vertex("7")
	require.Equal(int64(7), v.Metadata["prime"])

	require.ErrorIs(s.g.SetMetadata("9", "prime", 9), core.ErrVertexNotFound)
	_, err = s.g.Vertex("9")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
