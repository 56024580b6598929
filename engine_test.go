package platracer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/platracer"
	"github.com/katalvlaran/platracer/config"
	"github.com/katalvlaran/platracer/external"
	"github.com/katalvlaran/platracer/geom"
)

type fakePlatform struct {
	name string
	rect geom.Rect
}

type fakeWorld struct {
	platforms []*fakePlatform
	standing  map[external.Actor]*fakePlatform
}

func (w *fakeWorld) EnumerateSceneObjects(layerMask int, tagFilter string) []external.ObjectHandle {
	out := make([]external.ObjectHandle, len(w.platforms))
	for i, p := range w.platforms {
		out[i] = p
	}
	return out
}

func (w *fakeWorld) BoundingRectangle(obj external.ObjectHandle) geom.Rect { return obj.(*fakePlatform).rect }

func (w *fakeWorld) TopFace(obj external.ObjectHandle) (geom.Line, bool) {
	r := obj.(*fakePlatform).rect
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

type fakeArcs struct{ jumpWidth, jumpHeight, fallWidth, fallDepth float64 }

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

type fakeSteering struct{ last external.Vec2 }

func (s *fakeSteering) SetDirectionalInput(v external.Vec2) { s.last = v }

// TestEngineTickBuildsGraphAndSteers exercises the facade end to end:
// construct an Engine directly from config.Options and five
// collaborators, tick it, and observe a non-empty trace and a
// directional steering call, without touching orchestrator internals.
func TestEngineTickBuildsGraphAndSteers(t *testing.T) {
	require := require.New(t)

	p1 := &fakePlatform{name: "P1", rect: geom.NewRect(0, 0, 10, 1)}
	p2 := &fakePlatform{name: "P2", rect: geom.NewRect(12, 0, 22, 1)}
	world := &fakeWorld{platforms: []*fakePlatform{p1, p2}, standing: map[external.Actor]*fakePlatform{
		external.AgentActor:  p1,
		external.TargetActor: p2,
	}}
	arcs := &fakeArcs{jumpWidth: 4, jumpHeight: 2, fallWidth: 20, fallDepth: 30}
	steering := &fakeSteering{}

	cfg := config.Options{
		SegmentWidthMultiplier: 10,
		RTreeMaxEntries:        5,
		RTreeMinEntries:        2,
		ReaderTimeout:          10 * time.Millisecond,
		WriterTimeout:          20 * time.Millisecond,
	}
	eng := platracer.New(cfg, 1, world, world, world, arcs, steering)

	eng.Tick(1)

	require.NotEmpty(eng.Trace())
	require.Equal(external.Vec2{X: 1}, steering.last)
	require.False(eng.Graph().IsEmpty())
}
