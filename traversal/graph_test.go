package traversal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/platracer/geom"
	"github.com/katalvlaran/platracer/traversal"
)

type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) newGraph() *traversal.Graph[string] {
	return traversal.New[string](10*time.Millisecond, 20*time.Millisecond)
}

func (s *GraphSuite) TestAddCreatesNodesAndAdjacency() {
	require := require.New(s.T())
	g := s.newGraph()

	edge := traversal.NewEdge("walk", geom.Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}},
		traversal.Walking, traversal.FlowAll, 10)
	require.True(g.Add(edge, "platform-a"))

	require.Equal(1, g.Count())
	require.True(g.ContainsLink(edge.ID))
	require.True(g.ContainsNode(edge.StartKey()))
	require.True(g.ContainsNode(edge.EndKey()))
}

func (s *GraphSuite) TestAddIsIdempotent() {
	require := require.New(s.T())
	g := s.newGraph()

	line := geom.Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}}
	edge := traversal.NewEdge("walk", line, traversal.Walking, traversal.FlowAll, 10)

	require.True(g.Add(edge, "platform-a"))
	require.True(g.Add(edge, "platform-a"))
	require.Equal(1, g.Count())
}

func (s *GraphSuite) TestSharedEndpointMergesIntoOneNode() {
	require := require.New(s.T())
	g := s.newGraph()

	a := traversal.NewEdge("a", geom.Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}},
		traversal.Walking, traversal.FlowAll, 10)
	b := traversal.NewEdge("b", geom.Line{Start: geom.Point{X: 10, Y: 0}, End: geom.Point{X: 20, Y: 0}},
		traversal.Walking, traversal.FlowAll, 10)

	require.True(g.Add(a, "platform-a"))
	require.True(g.Add(b, "platform-b"))
	require.Equal(a.EndKey(), b.StartKey())
	require.Equal(3, countNodesViaClosest(g))
}

// countNodesViaClosest is a small helper exercising FindClosestLink
// from three distinct probe points to indirectly confirm the shared
// middle node resolved to exactly one location (a and b both touch it).
func countNodesViaClosest(g *traversal.Graph[string]) int {
	seen := map[uint64]struct{}{}
	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}} {
		edge, ok := g.FindClosestLink(p)
		if !ok {
			continue
		}
		if geom.PointKey(p) == edge.StartKey() || geom.PointKey(p) == edge.EndKey() {
			seen[geom.PointKey(p)] = struct{}{}
		}
	}
	return len(seen)
}

func (s *GraphSuite) TestRemoveDetachesFromBothEndpointsAndPrunesNode() {
	require := require.New(s.T())
	g := s.newGraph()

	edge := traversal.NewEdge("walk", geom.Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}},
		traversal.Walking, traversal.FlowAll, 10)
	require.True(g.Add(edge, "platform-a"))

	require.True(g.Remove(edge.ID, false, 0))
	require.Equal(0, g.Count())
	require.False(g.ContainsNode(edge.StartKey()))
	require.False(g.ContainsNode(edge.EndKey()))
}

// TestRemoveCascadesConnectedEdges mirrors the platform-surface-removal
// scenario: removing a standing edge also removes a jump edge anchored
// at the same node, because Jumping is included in the connected mask,
// but leaves an unrelated walking edge on the far side untouched.
func (s *GraphSuite) TestRemoveCascadesConnectedEdges() {
	require := require.New(s.T())
	g := s.newGraph()

	stand := traversal.NewEdge("stand", geom.Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}},
		traversal.Standing, traversal.FlowAll, 10)
	jump := traversal.NewEdge("jump", geom.Line{Start: geom.Point{X: 10, Y: 0}, End: geom.Point{X: 20, Y: 5}},
		traversal.Jumping, traversal.FlowAll, 12)
	far := traversal.NewEdge("far", geom.Line{Start: geom.Point{X: 20, Y: 5}, End: geom.Point{X: 30, Y: 5}},
		traversal.Walking, traversal.FlowAll, 10)

	require.True(g.Add(stand, "platform-a"))
	require.True(g.Add(jump, "platform-a"))
	require.True(g.Add(far, "platform-b"))

	require.True(g.Remove(stand.ID, true, traversal.Jumping))

	require.False(g.ContainsLink(stand.ID))
	require.False(g.ContainsLink(jump.ID))
	require.True(g.ContainsLink(far.ID))
}

func (s *GraphSuite) TestFindObjectLinksPicksOverlappingClosestEdge() {
	require := require.New(s.T())
	g := s.newGraph()

	low := traversal.NewEdge("low", geom.Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}},
		traversal.Standing, traversal.FlowAll, 10)
	high := traversal.NewEdge("high", geom.Line{Start: geom.Point{X: 0, Y: 5}, End: geom.Point{X: 10, Y: 5}},
		traversal.Standing, traversal.FlowAll, 10)
	require.True(g.Add(low, "platform-a"))
	require.True(g.Add(high, "platform-a"))

	otherRect := geom.NewRect(2, 0.5, 4, 1.5)
	found, ok := g.FindObjectLinks("platform-a", otherRect)
	require.True(ok)
	require.Equal(low.ID, found.ID)
}

func (s *GraphSuite) TestAStarReturnsOwningObjects() {
	require := require.New(s.T())
	g := s.newGraph()

	a := traversal.NewEdge("a", geom.Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}},
		traversal.Walking, traversal.FlowAll, 10)
	b := traversal.NewEdge("b", geom.Line{Start: geom.Point{X: 10, Y: 0}, End: geom.Point{X: 20, Y: 0}},
		traversal.Walking, traversal.FlowAll, 10)
	require.True(g.Add(a, "platform-a"))
	require.True(g.Add(b, "platform-b"))

	steps, err := g.AStar(a.ID, b.ID)
	require.NoError(err)
	require.Len(steps, 2)
	require.Equal("platform-a", steps[0].Object)
	require.Equal("platform-b", steps[1].Object)
}

func (s *GraphSuite) TestAStarUnreachableReturnsEmpty() {
	require := require.New(s.T())
	g := s.newGraph()

	a := traversal.NewEdge("a", geom.Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}},
		traversal.Walking, traversal.FlowAll, 10)
	b := traversal.NewEdge("b", geom.Line{Start: geom.Point{X: 500, Y: 500}, End: geom.Point{X: 510, Y: 500}},
		traversal.Walking, traversal.FlowAll, 10)
	require.True(g.Add(a, "platform-a"))
	require.True(g.Add(b, "platform-b"))

	steps, err := g.AStar(a.ID, b.ID)
	require.NoError(err)
	require.Empty(steps)
}

func (s *GraphSuite) TestClearEmptiesGraph() {
	require := require.New(s.T())
	g := s.newGraph()
	edge := traversal.NewEdge("walk", geom.Line{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 0}},
		traversal.Walking, traversal.FlowAll, 10)
	require.True(g.Add(edge, "platform-a"))

	require.True(g.Clear())
	require.True(g.IsEmpty())
	require.False(g.ContainsNode(edge.StartKey()))
}
