package traversal

import (
	"math"
	"time"

	"github.com/katalvlaran/platracer/geom"
	"github.com/katalvlaran/platracer/pathsolve"
	"github.com/katalvlaran/platracer/synclock"
)

// Graph is the traversal graph: a set of Nodes keyed by point identity
// connected by Edges, each edge owned by exactly one object of type O
// (typically a platform handle from package external). Graph is safe
// for concurrent use; every mutating and read operation acquires
// lock with the configured timeout and returns false/ErrLockTimeout if
// it cannot be acquired in time, per the spec's "leave the graph
// unchanged on timeout" rule.
type Graph[O comparable] struct {
	lock *synclock.TimedRWMutex

	nodes map[NodeKey]*Node
	edges map[EdgeID]*Edge

	edgeObject  map[EdgeID]O
	objectEdges map[O][]EdgeID
}

// New builds an empty Graph whose lock acquisitions time out after
// readTimeout (for queries) or writeTimeout (for mutations).
func New[O comparable](readTimeout, writeTimeout time.Duration) *Graph[O] {
	return &Graph[O]{
		lock:        synclock.New(readTimeout, writeTimeout),
		nodes:       make(map[NodeKey]*Node),
		edges:       make(map[EdgeID]*Edge),
		edgeObject:  make(map[EdgeID]O),
		objectEdges: make(map[O][]EdgeID),
	}
}

// Count returns the number of edges currently in the graph.
func (g *Graph[O]) Count() int {
	if !g.lock.RLock() {
		return 0
	}
	defer g.lock.RUnlock()
	return len(g.edges)
}

// IsEmpty reports whether the graph has no edges.
func (g *Graph[O]) IsEmpty() bool { return g.Count() == 0 }

// Clear removes every node and edge. It returns false if the write
// lock could not be acquired.
func (g *Graph[O]) Clear() bool {
	if !g.lock.Lock() {
		return false
	}
	defer g.lock.Unlock()

	g.nodes = make(map[NodeKey]*Node)
	g.edges = make(map[EdgeID]*Edge)
	g.edgeObject = make(map[EdgeID]O)
	g.objectEdges = make(map[O][]EdgeID)
	return true
}

// ContainsNode reports whether a node with the given key exists.
func (g *Graph[O]) ContainsNode(key NodeKey) bool {
	if !g.lock.RLock() {
		return false
	}
	defer g.lock.RUnlock()
	_, ok := g.nodes[key]
	return ok
}

// Owner returns the object that owns edge id, and true if id exists.
func (g *Graph[O]) Owner(id EdgeID) (O, bool) {
	if !g.lock.RLock() {
		var zero O
		return zero, false
	}
	defer g.lock.RUnlock()
	obj, ok := g.edgeObject[id]
	return obj, ok
}

// ObjectEdges returns a snapshot of the edge IDs currently owned by
// object, in no particular order.
func (g *Graph[O]) ObjectEdges(object O) []EdgeID {
	if !g.lock.RLock() {
		return nil
	}
	defer g.lock.RUnlock()

	src := g.objectEdges[object]
	out := make([]EdgeID, len(src))
	copy(out, src)
	return out
}

// Edge returns the edge with the given ID, or nil if it does not
// exist.
func (g *Graph[O]) Edge(id EdgeID) *Edge {
	if !g.lock.RLock() {
		return nil
	}
	defer g.lock.RUnlock()
	return g.edges[id]
}

// ContainsLink reports whether an edge with the given ID exists.
func (g *Graph[O]) ContainsLink(id EdgeID) bool {
	if !g.lock.RLock() {
		return false
	}
	defer g.lock.RUnlock()
	_, ok := g.edges[id]
	return ok
}

// Add registers edge as belonging to object, creating its endpoint
// nodes if they do not already exist and wiring the edge into both
// adjacency lists. Add is idempotent: re-adding an edge with the same
// ID updates its object ownership and fields in place. It returns
// false if the write lock could not be acquired, or if the mutation
// left the edge/node tables in a structurally inconsistent state —
// either way the graph should be treated as stale by the caller.
func (g *Graph[O]) Add(edge *Edge, object O) bool {
	if !g.lock.Lock() {
		return false
	}
	defer g.lock.Unlock()

	g.ensureNode(edge.startKey, edge.Line.Start)
	g.ensureNode(edge.endKey, edge.Line.End)

	if _, exists := g.edges[edge.ID]; !exists {
		g.nodes[edge.startKey].adjacent[edge.ID] = struct{}{}
		g.nodes[edge.endKey].adjacent[edge.ID] = struct{}{}
	}
	g.edges[edge.ID] = edge

	if prevObj, owned := g.edgeObject[edge.ID]; owned && prevObj != object {
		g.detachObjectEdge(prevObj, edge.ID)
	}
	g.edgeObject[edge.ID] = object
	if !containsEdge(g.objectEdges[object], edge.ID) {
		g.objectEdges[object] = append(g.objectEdges[object], edge.ID)
	}

	return assertInvariant(g.checkEdgeNodeConsistency)
}

func (g *Graph[O]) ensureNode(key NodeKey, at geom.Point) {
	if _, ok := g.nodes[key]; ok {
		return
	}
	g.nodes[key] = &Node{Key: key, Location: at, adjacent: make(map[EdgeID]struct{})}
}

func containsEdge(list []EdgeID, id EdgeID) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}
	return false
}

// Remove detaches edge id from the graph. When removeConnected is
// true, every other edge directly adjacent to id's endpoints whose
// Action mask intersects connectedMask is cascade-removed as well (for
// example, removing a platform's standing surface also removes the
// jump/fall links anchored to it). Nodes left with no remaining
// adjacency are pruned. It returns false if the write lock could not
// be acquired, or if the detach left the edge/node tables
// structurally inconsistent; the caller should treat the graph as
// stale either way.
func (g *Graph[O]) Remove(id EdgeID, removeConnected bool, connectedMask ActionMask) bool {
	if !g.lock.Lock() {
		return false
	}
	defer g.lock.Unlock()

	target, ok := g.edges[id]
	if !ok {
		return true
	}

	toRemove := []EdgeID{id}
	if removeConnected {
		seen := map[EdgeID]struct{}{id: {}}
		for _, nodeKey := range []NodeKey{target.startKey, target.endKey} {
			node, ok := g.nodes[nodeKey]
			if !ok {
				continue
			}
			for adj := range node.adjacent {
				if _, already := seen[adj]; already {
					continue
				}
				other := g.edges[adj]
				if other != nil && other.Action.AllowsAny(connectedMask) {
					seen[adj] = struct{}{}
					toRemove = append(toRemove, adj)
				}
			}
		}
	}

	for _, rid := range toRemove {
		g.detachEdge(rid)
	}

	return assertInvariant(g.checkEdgeNodeConsistency)
}

// detachEdge removes a single edge from the edge table, both
// endpoints' adjacency sets, and the object ownership maps, pruning
// either endpoint node if it is left with no adjacency.
func (g *Graph[O]) detachEdge(id EdgeID) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.edges, id)

	for _, nodeKey := range []NodeKey{e.startKey, e.endKey} {
		node, ok := g.nodes[nodeKey]
		if !ok {
			continue
		}
		delete(node.adjacent, id)
		if len(node.adjacent) == 0 {
			delete(g.nodes, nodeKey)
		}
	}

	if obj, owned := g.edgeObject[id]; owned {
		delete(g.edgeObject, id)
		g.detachObjectEdge(obj, id)
	}
}

func (g *Graph[O]) detachObjectEdge(object O, id EdgeID) {
	list := g.objectEdges[object]
	for i, x := range list {
		if x == id {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(g.objectEdges, object)
	} else {
		g.objectEdges[object] = list
	}
}

// FindObjectLinks returns the edge owned by platformObject whose line
// overlaps otherRect on the horizontal axis and whose centroid is
// closest to otherRect's bottom-center, along with true if any such
// edge exists. This accepts the other object's bounding rectangle
// directly rather than a second object handle of type O, since a
// generic Graph[O] has no way to resolve geometry from an opaque O.
// The orchestrator, the only caller, passes the standing platform's
// own bounding rectangle, since its collaborators expose no rectangle
// for the agent or target; for a platform split into several segments
// the segment nearest the platform's horizontal center is returned,
// not the segment under the character.
func (g *Graph[O]) FindObjectLinks(platformObject O, otherRect geom.Rect) (*Edge, bool) {
	if !g.lock.RLock() {
		return nil, false
	}
	defer g.lock.RUnlock()

	anchor := geom.Point{X: (otherRect.Left + otherRect.Right) / 2, Y: otherRect.Bottom}

	var best *Edge
	bestDist := math.Inf(1)
	for _, id := range g.objectEdges[platformObject] {
		e := g.edges[id]
		if e == nil {
			continue
		}
		if !otherRect.OverlapsOnAxis(e.Line, geom.AxisHorizontal) {
			continue
		}
		d := e.Line.Centroid().Distance(anchor)
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best, best != nil
}

// FindClosestLink returns the edge whose line segment is nearest to
// point, along with true if the graph has any edges.
func (g *Graph[O]) FindClosestLink(point geom.Point) (*Edge, bool) {
	if !g.lock.RLock() {
		return nil, false
	}
	defer g.lock.RUnlock()

	var best *Edge
	bestDist := math.Inf(1)
	for _, e := range g.edges {
		d := e.Line.Distance(point)
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best, best != nil
}

// PathStep pairs a path edge with the object that owns it, so callers
// can drive their steering output from the owning platform.
type PathStep[O comparable] struct {
	Edge   *Edge
	Object O
}

// AStar finds the cheapest edge path from origin to destination and
// returns it as an ordered slice of (edge, owning object) pairs, or an
// empty slice if destination is unreachable. The full search runs
// under the graph's write lock held for its entire duration: A*
// mutates every edge's transient solver fields directly, and a
// concurrent Add/Remove interleaved with the search could read
// half-updated adjacency. Before searching it checks the same
// structural invariant Add/Remove enforce and returns
// ErrInvariantViolation if it is broken, rather than handing the
// solver a graph it cannot trust.
func (g *Graph[O]) AStar(origin, destination EdgeID) ([]PathStep[O], error) {
	if !g.lock.Lock() {
		return nil, ErrLockTimeout
	}
	defer g.lock.Unlock()

	if !assertInvariant(g.checkEdgeNodeConsistency) {
		return nil, ErrInvariantViolation
	}

	ids, err := pathsolve.Solve((*solverView[O])(g), origin, destination)
	if err != nil {
		return nil, err
	}

	steps := make([]PathStep[O], 0, len(ids))
	for _, id := range ids {
		steps = append(steps, PathStep[O]{Edge: g.edges[id], Object: g.edgeObject[id]})
	}
	return steps, nil
}

// solverView adapts *Graph[O] to pathsolve.Graph. It is a distinct
// named type (rather than implementing the interface directly on
// *Graph[O]) purely for documentation: these methods exist to satisfy
// the solver's contract and are not meant to be called directly by
// other traversal callers.
type solverView[O comparable] Graph[O]

func (g *solverView[O]) asGraph() *Graph[O] { return (*Graph[O])(g) }

func (g *solverView[O]) Exists(edge uint64) bool {
	_, ok := g.asGraph().edges[edge]
	return ok
}

func (g *solverView[O]) AdjacentEdges(edge uint64) []uint64 {
	self := g.asGraph()
	e, ok := self.edges[edge]
	if !ok {
		return nil
	}
	seen := map[EdgeID]struct{}{edge: {}}
	var out []EdgeID
	for _, nodeKey := range []NodeKey{e.startKey, e.endKey} {
		node, ok := self.nodes[nodeKey]
		if !ok {
			continue
		}
		for adj := range node.adjacent {
			if _, dup := seen[adj]; dup {
				continue
			}
			seen[adj] = struct{}{}
			out = append(out, adj)
		}
	}
	return out
}

func (g *solverView[O]) EdgeCentroid(edge uint64) geom.Point {
	return g.asGraph().edges[edge].Line.Centroid()
}

func (g *solverView[O]) EdgeLength(edge uint64) float64 {
	return g.asGraph().edges[edge].Line.Length()
}

func (g *solverView[O]) EntersViaStart(edge, from uint64) bool {
	self := g.asGraph()
	e, o := self.edges[edge], self.edges[from]
	return e.startKey == o.startKey || e.startKey == o.endKey
}

func (g *solverView[O]) EntersViaEnd(edge, from uint64) bool {
	self := g.asGraph()
	e, o := self.edges[edge], self.edges[from]
	return e.endKey == o.startKey || e.endKey == o.endKey
}

func (g *solverView[O]) AllowsFlowIntoStart(edge uint64) bool {
	e := g.asGraph().edges[edge]
	return e.Flow.AllowsFlow(FlowStartToEnd)
}

func (g *solverView[O]) AllowsFlowIntoEnd(edge uint64) bool {
	e := g.asGraph().edges[edge]
	return e.Flow.AllowsFlow(FlowEndToStart)
}

func (g *solverView[O]) ResetTransient() {
	for _, e := range g.asGraph().edges {
		e.g, e.f, e.hasPredecessor = math.Inf(1), math.Inf(1), false
	}
}

func (g *solverView[O]) SetTransient(edge uint64, gCost, fCost float64, predecessor uint64, hasPredecessor bool) {
	e := g.asGraph().edges[edge]
	e.g, e.f, e.predecessor, e.hasPredecessor = gCost, fCost, predecessor, hasPredecessor
}

func (g *solverView[O]) Transient(edge uint64) (gCost, fCost float64, predecessor uint64, hasPredecessor bool) {
	e := g.asGraph().edges[edge]
	return e.g, e.f, e.predecessor, e.hasPredecessor
}

var _ pathsolve.Graph = (*solverView[int])(nil)
