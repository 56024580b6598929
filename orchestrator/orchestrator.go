package orchestrator

import (
	"fmt"

	"github.com/katalvlaran/platracer/config"
	"github.com/katalvlaran/platracer/external"
	"github.com/katalvlaran/platracer/geom"
	"github.com/katalvlaran/platracer/platracerlog"
	"github.com/katalvlaran/platracer/rtree"
	"github.com/katalvlaran/platracer/traversal"
)

// Orchestrator ties the spatial index and traversal graph to a set of
// host collaborators, performing incremental maintenance on a
// configurable cadence and emitting a steering decision every tick.
type Orchestrator struct {
	cfg        config.Options
	agentWidth float64

	scene      external.SceneProvider
	objects    external.ObjectProvider
	controller external.ControllerProvider
	arcs       external.ArcProvider
	steering   external.SteeringSink
	log        *platracerlog.Logger

	graph *traversal.Graph[external.ObjectHandle]
	index *rtree.Tree[external.ObjectHandle]

	priorRects map[external.ObjectHandle]geom.Rect

	trace        []traversal.PathStep[external.ObjectHandle]
	sinceUpdate  float64
	forceRebuild bool
}

// New builds an Orchestrator for an agent of the given width, wiring
// cfg.Normalized() into a fresh traversal.Graph and rtree.Tree.
func New(cfg config.Options, agentWidth float64, scene external.SceneProvider, objects external.ObjectProvider, controller external.ControllerProvider, arcs external.ArcProvider, steering external.SteeringSink) *Orchestrator {
	cfg = cfg.Normalized()
	return &Orchestrator{
		cfg:        cfg,
		agentWidth: agentWidth,
		scene:      scene,
		objects:    objects,
		controller: controller,
		arcs:       arcs,
		steering:   steering,
		log:        platracerlog.Default(),
		graph:      traversal.New[external.ObjectHandle](cfg.ReaderTimeout, cfg.WriterTimeout),
		index:      rtree.New[external.ObjectHandle](cfg.RTreeMaxEntries, cfg.RTreeMinEntries, cfg.ReaderTimeout, cfg.WriterTimeout),
		priorRects: make(map[external.ObjectHandle]geom.Rect),
	}
}

// Graph exposes the underlying traversal graph for diagnostics and
// testing.
func (o *Orchestrator) Graph() *traversal.Graph[external.ObjectHandle] { return o.graph }

// Index exposes the underlying spatial index for diagnostics and
// testing.
func (o *Orchestrator) Index() *rtree.Tree[external.ObjectHandle] { return o.index }

// Trace returns the most recently computed path, as (edge, owning
// object) pairs in travel order.
func (o *Orchestrator) Trace() []traversal.PathStep[external.ObjectHandle] { return o.trace }

// Tick advances the orchestrator by dt seconds of game time: graph
// maintenance runs at most once every cfg.GraphUpdateInterval, but
// steering is recomputed every call, per spec's "interval for
// maintenance, every frame for steering" rule. It returns
// ErrGraphBuildTimeout if maintenance could not complete this tick; the
// prior graph state is left in place and a full rebuild is scheduled
// for the next one.
func (o *Orchestrator) Tick(dt float64) error {
	o.sinceUpdate += dt
	var err error
	if o.sinceUpdate >= o.cfg.GraphUpdateInterval {
		o.sinceUpdate = 0
		err = o.maintain()
	}
	o.updateSteering()
	return err
}

func (o *Orchestrator) maintain() error {
	scene := o.scene.EnumerateSceneObjects(o.cfg.LayerMask, o.cfg.TagFilter)
	currentRects, ok := o.rebuildIndex(scene)
	if !ok {
		return o.failMaintenance("rebuildIndex")
	}

	if o.forceRebuild || o.cfg.FullGraphRebuild || o.graph.IsEmpty() {
		o.forceRebuild = false
		if !o.rebuildGraph(scene, currentRects) {
			return o.failMaintenance("rebuildGraph")
		}
		return nil
	}
	if !o.refreshGraph(scene, currentRects) {
		return o.failMaintenance("refreshGraph")
	}
	return nil
}

// failMaintenance logs the failed step and schedules a full rebuild on
// the next tick, per spec's "partial mutation recovers via full
// rebuild" rule for both lock timeouts and structural invariant
// violations.
func (o *Orchestrator) failMaintenance(step string) error {
	o.forceRebuild = true
	o.log.Warnf("%s failed, scheduling full rebuild", step)
	return ErrGraphBuildTimeout
}

// segmentTargetLength is the top-face split target length for the
// configured agent width and segment multiplier.
func (o *Orchestrator) segmentTargetLength() float64 {
	return o.agentWidth * o.cfg.SegmentWidthMultiplier
}

// segmentLines splits obj's top face into sub-segments, or returns
// ok=false if the object has no horizontal top face.
func (o *Orchestrator) segmentLines(obj external.ObjectHandle) ([]geom.Line, bool) {
	topFace, ok := o.objects.TopFace(obj)
	if !ok {
		return nil, false
	}
	return topFace.Split(o.segmentTargetLength(), 100), true
}

func segmentLineRect(l geom.Line) geom.Rect {
	return geom.NewRect(l.MinX(), l.MinY(), l.MaxX(), l.MaxY())
}

func segmentEdgeName(objectName string, index int) string {
	return fmt.Sprintf("%s#%d", objectName, index)
}
