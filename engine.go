package platracer

import (
	"github.com/katalvlaran/platracer/config"
	"github.com/katalvlaran/platracer/external"
	"github.com/katalvlaran/platracer/orchestrator"
	"github.com/katalvlaran/platracer/rtree"
	"github.com/katalvlaran/platracer/traversal"
)

// Engine is the facade a host game loop embeds: one orchestrator,
// configured once at construction, ticked once per frame.
type Engine struct {
	orc *orchestrator.Orchestrator
}

// New builds an Engine for an agent of the given width over the
// supplied collaborators. cfg is normalized internally; zero-valued
// fields fall back to config.Default()'s values.
func New(cfg config.Options, agentWidth float64, scene external.SceneProvider, objects external.ObjectProvider, controller external.ControllerProvider, arcs external.ArcProvider, steering external.SteeringSink) *Engine {
	return &Engine{orc: orchestrator.New(cfg, agentWidth, scene, objects, controller, arcs, steering)}
}

// Tick advances the engine by dt seconds of game time: graph
// maintenance runs on the configured cadence, steering every call. It
// returns orchestrator.ErrGraphBuildTimeout if maintenance could not
// complete this tick; the prior graph state is left in place and a
// full rebuild is scheduled for the next one.
func (e *Engine) Tick(dt float64) error { return e.orc.Tick(dt) }

// Graph exposes the underlying traversal graph for diagnostics.
func (e *Engine) Graph() *traversal.Graph[external.ObjectHandle] { return e.orc.Graph() }

// Index exposes the underlying spatial index for diagnostics.
func (e *Engine) Index() *rtree.Tree[external.ObjectHandle] { return e.orc.Index() }

// Trace returns the most recently computed path, as (edge, owning
// object) pairs in travel order.
func (e *Engine) Trace() []traversal.PathStep[external.ObjectHandle] { return e.orc.Trace() }
