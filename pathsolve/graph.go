package pathsolve

import "github.com/katalvlaran/platracer/geom"

// Graph is the structural contract A* needs from a traversal graph. It
// is satisfied by *traversal.Graph[O] for any object type O without
// this package importing traversal, which would otherwise create an
// import cycle (traversal.Graph.AStar delegates into Solve).
type Graph interface {
	// Exists reports whether edge is currently present in the graph.
	Exists(edge uint64) bool

	// AdjacentEdges returns every edge that touches edge's start or end
	// node, excluding edge itself.
	AdjacentEdges(edge uint64) []uint64

	// EdgeCentroid returns the midpoint of edge's line segment.
	EdgeCentroid(edge uint64) geom.Point

	// EdgeLength returns the length of edge's line segment.
	EdgeLength(edge uint64) float64

	// EntersViaStart reports whether edge's start node is shared with
	// either endpoint of from.
	EntersViaStart(edge, from uint64) bool

	// EntersViaEnd reports whether edge's end node is shared with
	// either endpoint of from.
	EntersViaEnd(edge, from uint64) bool

	// AllowsFlowIntoStart reports whether edge's flow permits entry via
	// its start side (flow StartToEnd or All).
	AllowsFlowIntoStart(edge uint64) bool

	// AllowsFlowIntoEnd reports whether edge's flow permits entry via
	// its end side (flow EndToStart or All).
	AllowsFlowIntoEnd(edge uint64) bool

	// ResetTransient clears every edge's solver-transient fields ahead of
	// a fresh search: g-cost and f-cost must be set to +Inf and
	// hasPredecessor to false, so the first relaxation of any edge other
	// than start always improves on it.
	ResetTransient()

	// SetTransient records edge's current best g/f cost and
	// predecessor.
	SetTransient(edge uint64, g, f float64, predecessor uint64, hasPredecessor bool)

	// Transient returns edge's current g/f cost and predecessor.
	Transient(edge uint64) (g, f float64, predecessor uint64, hasPredecessor bool)
}
