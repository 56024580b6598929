package traversal

import (
	"fmt"
	"hash/fnv"

	"github.com/katalvlaran/platracer/geom"
)

// ActionMask is a bitmask of the locomotion/aerial actions an edge
// supports.
type ActionMask uint8

const (
	Standing ActionMask = 1 << iota
	Crouching
	Crawling
	Walking
	Running
	Jumping
	Falling
)

// Traversing is the union of ground-locomotion actions: every action
// that keeps the agent's feet on a platform.
const Traversing = Standing | Walking | Running | Crouching | Crawling

// AllowsAll reports whether mask contains every flag in required.
func (mask ActionMask) AllowsAll(required ActionMask) bool {
	return mask&required == required
}

// AllowsAny reports whether mask shares any flag with other.
func (mask ActionMask) AllowsAny(other ActionMask) bool {
	return mask&other != 0
}

// FlowDirection restricts which side of an edge a traversal may enter
// from.
type FlowDirection uint8

const (
	// FlowNone permits entry from neither side.
	FlowNone FlowDirection = iota
	// FlowStartToEnd permits entry only via the Start endpoint.
	FlowStartToEnd
	// FlowEndToStart permits entry only via the End endpoint.
	FlowEndToStart
	// FlowAll permits entry via either endpoint.
	FlowAll
)

// AllowsFlow reports whether f permits the requested direction dir:
// FlowAll always matches; otherwise the directions must be identical.
func (f FlowDirection) AllowsFlow(dir FlowDirection) bool {
	if f == FlowAll {
		return true
	}
	return f == dir
}

// EdgeID identifies an Edge by the hash of its textual representation
// "{name} : [{start},{end}]", matching the spec's edge identity rule.
// It is a type alias (not a distinct named type) so pathsolve's Graph
// interface, written in terms of plain uint64, is satisfied by Graph's
// methods without either package importing the other.
type EdgeID = uint64

// NodeKey identifies a Node by the point key of its location.
type NodeKey = uint64

// NewEdgeID computes the identity hash for an edge with the given name
// and endpoints.
func NewEdgeID(name string, start, end geom.Point) EdgeID {
	text := fmt.Sprintf("%s : [%s,%s]", name, pointText(start), pointText(end))
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	return h.Sum64()
}

func pointText(p geom.Point) string {
	return fmt.Sprintf("(%.3f,%.3f)", p.X, p.Y)
}

// Edge is a traversal graph link: a line segment with movement
// semantics, a flow restriction, and the transient fields the A* solver
// uses during a search.
type Edge struct {
	ID     EdgeID
	Name   string
	Line   geom.Line
	Action ActionMask
	Flow   FlowDirection
	Weight float64

	startKey NodeKey
	endKey   NodeKey

	g              float64
	f              float64
	predecessor    EdgeID
	hasPredecessor bool
}

// NewEdge builds an Edge, computing its identity and endpoint node keys
// from name and line.
func NewEdge(name string, line geom.Line, action ActionMask, flow FlowDirection, weight float64) *Edge {
	return &Edge{
		ID:       NewEdgeID(name, line.Start, line.End),
		Name:     name,
		Line:     line,
		Action:   action,
		Flow:     flow,
		Weight:   weight,
		startKey: geom.PointKey(line.Start),
		endKey:   geom.PointKey(line.End),
	}
}

// StartKey returns the point key of the edge's Start endpoint.
func (e *Edge) StartKey() NodeKey { return e.startKey }

// EndKey returns the point key of the edge's End endpoint.
func (e *Edge) EndKey() NodeKey { return e.endKey }

// AllowsAction reports whether the edge's action mask contains every
// flag in mask.
func (e *Edge) AllowsAction(mask ActionMask) bool { return e.Action.AllowsAll(mask) }

// AllowsFlow reports whether the edge's flow direction permits entry
// from dir.
func (e *Edge) AllowsFlow(dir FlowDirection) bool { return e.Flow.AllowsFlow(dir) }

// LeftNode returns the endpoint with the smaller X coordinate.
func (e *Edge) LeftNode() geom.Point { return e.Line.LeftPoint() }

// RightNode returns the endpoint with the larger X coordinate.
func (e *Edge) RightNode() geom.Point { return e.Line.RightPoint() }

// Node is a graph vertex: a named location shared by every edge whose
// Start or End point key matches it.
type Node struct {
	Key      NodeKey
	Name     string
	Location geom.Point
	adjacent map[EdgeID]struct{}
}

// Adjacency returns the set of edge IDs incident to this node.
func (n *Node) Adjacency() []EdgeID {
	out := make([]EdgeID, 0, len(n.adjacent))
	for id := range n.adjacent {
		out = append(out, id)
	}
	return out
}

// Degree returns the number of edges incident to this node.
func (n *Node) Degree() int { return len(n.adjacent) }
