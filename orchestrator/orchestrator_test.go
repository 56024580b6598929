package orchestrator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/platracer/config"
	"github.com/katalvlaran/platracer/external"
	"github.com/katalvlaran/platracer/geom"
	"github.com/katalvlaran/platracer/orchestrator"
	"github.com/katalvlaran/platracer/traversal"
)

// fakePlatform is a scene object: a named, mutable axis-aligned
// rectangle. Pointer identity is its ObjectHandle identity, matching
// how a host typically hands out stable handles.
type fakePlatform struct {
	name string
	rect geom.Rect
}

// fakeWorld implements SceneProvider, ObjectProvider, and
// ControllerProvider over an in-memory platform list.
type fakeWorld struct {
	platforms []*fakePlatform
	standing  map[external.Actor]*fakePlatform
}

func newFakeWorld(platforms ...*fakePlatform) *fakeWorld {
	return &fakeWorld{platforms: platforms, standing: map[external.Actor]*fakePlatform{}}
}

func (w *fakeWorld) EnumerateSceneObjects(layerMask int, tagFilter string) []external.ObjectHandle {
	out := make([]external.ObjectHandle, len(w.platforms))
	for i, p := range w.platforms {
		out[i] = p
	}
	return out
}

func (w *fakeWorld) BoundingRectangle(obj external.ObjectHandle) geom.Rect {
	return obj.(*fakePlatform).rect
}

func (w *fakeWorld) TopFace(obj external.ObjectHandle) (geom.Line, bool) {
	r := obj.(*fakePlatform).rect
	if r.Width() <= r.Height() {
		return geom.Line{}, false
	}
	return geom.Line{Start: geom.Point{X: r.Left, Y: r.Top}, End: geom.Point{X: r.Right, Y: r.Top}}, true
}

func (w *fakeWorld) Name(obj external.ObjectHandle) string { return obj.(*fakePlatform).name }

func (w *fakeWorld) StandingPlatform(who external.Actor) (external.ObjectHandle, bool) {
	p, ok := w.standing[who]
	if !ok {
		return nil, false
	}
	return p, true
}

// fakeArcs implements ArcProvider with arcs that always clear
// vertically (a single sample far above any platform) so reachability
// in tests is governed entirely by the bounding rectangles' horizontal
// and vertical reach, matching each scenario's described gap/drop.
type fakeArcs struct {
	jumpWidth, jumpHeight float64
	fallWidth, fallDepth  float64
}

func (a *fakeArcs) JumpArcBoundingRect(dir external.Direction) geom.Rect {
	return geom.NewRect(0, 0, a.jumpWidth, a.jumpHeight)
}

func (a *fakeArcs) JumpArc(dir external.Direction, anchor geom.Rect) []geom.Rect {
	return []geom.Rect{geom.NewRect(anchor.Left, 1000, anchor.Right, 1001)}
}

func (a *fakeArcs) FallArcBoundingRect(dir external.Direction) geom.Rect {
	return geom.NewRect(0, 0, a.fallWidth, a.fallDepth)
}

func (a *fakeArcs) FallArc(dir external.Direction, anchor geom.Rect) []geom.Rect {
	return []geom.Rect{geom.NewRect(anchor.Left, 1000, anchor.Right, 1001)}
}

// fakeSteering records the last directional input it received.
type fakeSteering struct {
	last external.Vec2
}

func (s *fakeSteering) SetDirectionalInput(v external.Vec2) { s.last = v }

func flatTestConfig() config.Options {
	return config.Options{
		SegmentWidthMultiplier: 10,
		GraphUpdateInterval:    0,
		RTreeMaxEntries:        5,
		RTreeMinEntries:        2,
		ReaderTimeout:          10 * time.Millisecond,
		WriterTimeout:          20 * time.Millisecond,
	}
}

type OrchestratorSuite struct {
	suite.Suite
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorSuite))
}

// TestFlatGroundReachableJump mirrors spec scenario E1: two platforms
// with a 2-unit gap and a 4-unit jump reach must link via a jump edge,
// and steering from P1 must read Right.
func (s *OrchestratorSuite) TestFlatGroundReachableJump() {
	require := require.New(s.T())

	p1 := &fakePlatform{name: "P1", rect: geom.NewRect(0, 0, 10, 1)}
	p2 := &fakePlatform{name: "P2", rect: geom.NewRect(12, 0, 22, 1)}
	world := newFakeWorld(p1, p2)
	world.standing[external.AgentActor] = p1
	world.standing[external.TargetActor] = p2

	arcs := &fakeArcs{jumpWidth: 4, jumpHeight: 2, fallWidth: 20, fallDepth: 30}
	steering := &fakeSteering{}
	orc := orchestrator.New(flatTestConfig(), 1, world, world, world, arcs, steering)

	orc.Tick(1)

	require.NotEmpty(orc.Trace(), "a jump within reach must produce a non-empty trace")
	require.Equal(external.Vec2{X: 1}, steering.last, "agent on P1 heading toward P2 must steer Right")

	var sawJump bool
	for _, step := range orc.Trace() {
		if step.Edge.AllowsAction(traversal.Jumping) {
			sawJump = true
		}
	}
	require.True(sawJump, "trace must include the jump connector between P1 and P2")
}

// TestUnreachableGapYieldsEmptyTrace mirrors spec scenario E2: the same
// layout but with a 10-unit gap, beyond the 4-unit jump reach.
func (s *OrchestratorSuite) TestUnreachableGapYieldsEmptyTrace() {
	require := require.New(s.T())

	p1 := &fakePlatform{name: "P1", rect: geom.NewRect(0, 0, 10, 1)}
	p2 := &fakePlatform{name: "P2", rect: geom.NewRect(20, 0, 30, 1)}
	world := newFakeWorld(p1, p2)
	world.standing[external.AgentActor] = p1
	world.standing[external.TargetActor] = p2

	arcs := &fakeArcs{jumpWidth: 4, jumpHeight: 2, fallWidth: 20, fallDepth: 30}
	steering := &fakeSteering{}
	orc := orchestrator.New(flatTestConfig(), 1, world, world, world, arcs, steering)

	orc.Tick(1)

	require.Empty(orc.Trace())
	require.Equal(external.Vec2{}, steering.last)
}

// TestDropOnlyLinksFallEdge mirrors spec scenario E3: an elevated
// platform's right side must fall-link into the platform below it.
func (s *OrchestratorSuite) TestDropOnlyLinksFallEdge() {
	require := require.New(s.T())

	upper := &fakePlatform{name: "upper", rect: geom.NewRect(0, 10, 10, 11)}
	lower := &fakePlatform{name: "lower", rect: geom.NewRect(0, 0, 20, 1)}
	world := newFakeWorld(upper, lower)
	world.standing[external.AgentActor] = upper
	world.standing[external.TargetActor] = lower

	arcs := &fakeArcs{jumpWidth: 4, jumpHeight: 2, fallWidth: 20, fallDepth: 30}
	steering := &fakeSteering{}
	orc := orchestrator.New(flatTestConfig(), 1, world, world, world, arcs, steering)

	orc.Tick(1)

	require.NotEmpty(orc.Trace())
	var fallEdge *traversal.Edge
	for _, step := range orc.Trace() {
		if step.Edge.AllowsAction(traversal.Falling) {
			fallEdge = step.Edge
		}
	}
	require.NotNil(fallEdge, "trace must include a fall connector from upper to lower")
	require.Equal(traversal.FlowStartToEnd, fallEdge.Flow)
}

// TestStackedFallCandidatesPicksCloser mirrors spec scenario E4: of two
// stacked platforms below, only the closer one receives a fall link in
// a given direction.
func (s *OrchestratorSuite) TestStackedFallCandidatesPicksCloser() {
	require := require.New(s.T())

	upper := &fakePlatform{name: "upper", rect: geom.NewRect(0, 10, 10, 11)}
	near := &fakePlatform{name: "near", rect: geom.NewRect(0, 0, 10, 1)}
	far := &fakePlatform{name: "far", rect: geom.NewRect(0, -5, 10, -4)}
	world := newFakeWorld(upper, near, far)
	world.standing[external.AgentActor] = upper
	world.standing[external.TargetActor] = near

	arcs := &fakeArcs{jumpWidth: 4, jumpHeight: 2, fallWidth: 20, fallDepth: 30}
	steering := &fakeSteering{}
	orc := orchestrator.New(flatTestConfig(), 1, world, world, world, arcs, steering)

	orc.Tick(1)

	graph := orc.Graph()
	var fallEdges []*traversal.Edge
	for _, id := range graph.ObjectEdges(upper) {
		edge := graph.Edge(id)
		if edge != nil && edge.AllowsAction(traversal.Falling) {
			fallEdges = append(fallEdges, edge)
		}
	}
	require.NotEmpty(fallEdges, "upper must fall-link to at least the closer stacked platform")
	for _, edge := range fallEdges {
		require.InDelta(1, edge.Line.End.Y, 0.5, "a fall edge from upper must land on near, not the farther stacked platform")
	}
}

// TestRefreshAfterMoveDropsStaleJump mirrors spec scenario E6: starting
// from the E1 layout, moving P2 out of jump range and re-running the
// orchestrator's incremental Refresh must drop the old jump edge.
func (s *OrchestratorSuite) TestRefreshAfterMoveDropsStaleJump() {
	require := require.New(s.T())

	p1 := &fakePlatform{name: "P1", rect: geom.NewRect(0, 0, 10, 1)}
	p2 := &fakePlatform{name: "P2", rect: geom.NewRect(12, 0, 22, 1)}
	world := newFakeWorld(p1, p2)
	world.standing[external.AgentActor] = p1
	world.standing[external.TargetActor] = p2

	arcs := &fakeArcs{jumpWidth: 4, jumpHeight: 2, fallWidth: 20, fallDepth: 30}
	steering := &fakeSteering{}
	cfg := flatTestConfig()
	cfg.FullGraphRebuild = false
	orc := orchestrator.New(cfg, 1, world, world, world, arcs, steering)

	orc.Tick(1)
	require.NotEmpty(orc.Trace(), "initial tick must link P1 to P2 within jump range")

	p2.rect = geom.NewRect(30, 0, 40, 1)
	orc.Tick(1)

	require.Empty(orc.Trace(), "after moving P2 out of jump range, refresh must drop the stale link")
}
