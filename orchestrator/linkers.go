package orchestrator

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/platracer/external"
	"github.com/katalvlaran/platracer/geom"
	"github.com/katalvlaran/platracer/traversal"
)

// linkRefreshSet runs the jump and fall linkers, in both directions,
// over every walking/all-flow edge in refresh, adding any new edges
// they return to the graph. It returns false if any Add call failed.
func (o *Orchestrator) linkRefreshSet(refresh []traversal.EdgeID) bool {
	for _, id := range refresh {
		edge := o.graph.Edge(id)
		if edge == nil || !edge.AllowsAction(traversal.Walking) || edge.Flow != traversal.FlowAll {
			continue
		}
		object, ok := o.graph.Owner(id)
		if !ok {
			continue
		}

		for _, dir := range []external.Direction{external.Left, external.Right} {
			for _, jumpEdge := range o.jumpLinker(edge, object, dir) {
				if !o.graph.Add(jumpEdge, object) {
					return false
				}
			}
			if fallEdge := o.fallLinker(edge, object, dir); fallEdge != nil {
				if !o.graph.Add(fallEdge, object) {
					return false
				}
			}
		}
	}
	return true
}

// edgeEndpoint returns edge's dir-facing endpoint, unmodified: the
// exact point new jump/fall edges anchor to, so they share a node key
// with edge and stay connected in the traversal graph.
func edgeEndpoint(edge *traversal.Edge, dir external.Direction) geom.Point {
	if dir == external.Right {
		return edge.RightNode()
	}
	return edge.LeftNode()
}

// offsetAnchor returns endpoint shifted by agentWidth further in dir,
// placing the agent's body just clear of the platform edge. This is
// used only to position the arc bounding rectangle and its samples,
// never as a new edge's own endpoint — offsetting the edge itself
// would produce a point that does not match edge's node key and would
// leave the new link disconnected from the graph.
func offsetAnchor(endpoint geom.Point, dir external.Direction, agentWidth float64) geom.Point {
	if dir == external.Right {
		endpoint.X += agentWidth
	} else {
		endpoint.X -= agentWidth
	}
	return endpoint
}

// jumpAnchorRect positions a jump-arc bounding rectangle so it extends
// from at in the travel direction dir: for a rightward launch, at sits
// at the rectangle's left-center; for a leftward launch, at its
// right-center.
func jumpAnchorRect(bounding geom.Rect, at geom.Point, dir external.Direction) geom.Rect {
	if dir == external.Right {
		return bounding.SetLocation(geom.AnchorLeftCenter, at)
	}
	return bounding.SetLocation(geom.AnchorRightCenter, at)
}

// fallAnchorRect positions a fall-arc bounding rectangle centered
// horizontally on at, since a fall drops from the takeoff point with
// only modest horizontal drift in either direction, unlike a jump's
// directional launch.
func fallAnchorRect(bounding geom.Rect, at geom.Point) geom.Rect {
	return bounding.SetLocation(geom.AnchorTopCenter, at)
}

// samePlatform reports whether two objects' stable names identify the
// same source platform, per spec's "skip if the source edge belongs to
// the same object" rule.
func samePlatform(a, b string) bool { return a == b }

// candidateEdges returns every Traversing edge owned by obj, per the
// spec's "candidate platform... iterate its edges" wording restricted
// to ground segments (jump/fall connectors are never landing targets).
func (o *Orchestrator) candidateEdges(obj external.ObjectHandle) []*traversal.Edge {
	var out []*traversal.Edge
	for _, id := range o.graph.ObjectEdges(obj) {
		e := o.graph.Edge(id)
		if e != nil && e.Action.AllowsAny(traversal.Traversing) {
			out = append(out, e)
		}
	}
	return out
}

// jumpLinker returns a new Jumping/StartToEnd edge for every reachable
// candidate landing segment found from edge's dir-facing endpoint.
func (o *Orchestrator) jumpLinker(edge *traversal.Edge, object external.ObjectHandle, dir external.Direction) []*traversal.Edge {
	jumpNode := edgeEndpoint(edge, dir)
	queryAnchor := offsetAnchor(jumpNode, dir, o.agentWidth)
	queryRect := jumpAnchorRect(o.arcs.JumpArcBoundingRect(dir), queryAnchor, dir)
	samples := o.arcs.JumpArc(dir, queryRect)
	sourceName := o.objects.Name(object)

	var links []*traversal.Edge
	for _, item := range o.index.Find(queryRect) {
		if samePlatform(sourceName, o.objects.Name(item.Owner)) {
			continue
		}
		for _, candidate := range o.candidateEdges(item.Owner) {
			candidateRect := segmentLineRect(candidate.Line)
			if queryRect.Above(candidateRect) {
				continue
			}

			landed := false
			for _, sample := range samples {
				if sample.Above(candidateRect) && sample.OverlapsOnAxis(candidate.Line, geom.AxisHorizontal) {
					landed = true
					break
				}
			}
			if !landed {
				continue
			}

			landing := closerEndpoint(candidate, jumpNode)
			newEdge := traversal.NewEdge(jumpEdgeName(sourceName, dir), geom.Line{Start: jumpNode, End: landing},
				traversal.Jumping, traversal.FlowStartToEnd, 1)
			if newEdge.StartKey() == newEdge.EndKey() {
				continue
			}
			links = append(links, newEdge)
		}
	}
	return links
}

// fallLinker returns at most one new Falling/StartToEnd edge: the
// reachable candidate whose bounding-rect center is closest to edge's
// dir-facing endpoint.
func (o *Orchestrator) fallLinker(edge *traversal.Edge, object external.ObjectHandle, dir external.Direction) *traversal.Edge {
	fallNode := edgeEndpoint(edge, dir)
	queryAnchor := offsetAnchor(fallNode, dir, o.agentWidth)
	queryRect := fallAnchorRect(o.arcs.FallArcBoundingRect(dir), queryAnchor)
	samples := o.arcs.FallArc(dir, queryRect)
	sourceName := o.objects.Name(object)

	type scored struct {
		edge *traversal.Edge
		dist float64
	}
	var candidates []scored
	seenOwners := make(map[external.ObjectHandle]struct{})
	for _, item := range o.index.Find(queryRect) {
		if samePlatform(sourceName, o.objects.Name(item.Owner)) {
			continue
		}
		if _, seen := seenOwners[item.Owner]; seen {
			continue
		}
		seenOwners[item.Owner] = struct{}{}

		dist := o.objects.BoundingRectangle(item.Owner).Center().Distance(fallNode)
		for _, candidate := range o.candidateEdges(item.Owner) {
			candidates = append(candidates, scored{edge: candidate, dist: dist})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	for _, c := range candidates {
		candidateRect := segmentLineRect(c.edge.Line)
		landed := false
		for _, sample := range samples {
			if sample.Above(candidateRect) && sample.OverlapsOnAxis(c.edge.Line, geom.AxisHorizontal) {
				landed = true
				break
			}
		}
		if !landed {
			continue
		}

		landing, ok := fallLandingEndpoint(c.edge, fallNode, dir)
		if !ok {
			continue
		}

		newEdge := traversal.NewEdge(fallEdgeName(sourceName, dir), geom.Line{Start: fallNode, End: landing},
			traversal.Falling, traversal.FlowStartToEnd, 1)
		if newEdge.StartKey() == newEdge.EndKey() {
			continue
		}
		return newEdge
	}
	return nil
}

// fallLandingEndpoint picks candidate's closest endpoint to fallNode if
// it lies on the correct horizontal side for dir (right-of for a
// leftward fall, left-of for a rightward fall); otherwise it falls back
// to the other endpoint, and reports ok=false if neither qualifies.
func fallLandingEndpoint(candidate *traversal.Edge, fallNode geom.Point, dir external.Direction) (geom.Point, bool) {
	left, right := candidate.LeftNode(), candidate.RightNode()
	closest, other := left, right
	if right.Distance(fallNode) < left.Distance(fallNode) {
		closest, other = right, left
	}

	correctSide := func(p geom.Point) bool {
		if dir == external.Left {
			return p.X > fallNode.X
		}
		return p.X < fallNode.X
	}

	if correctSide(closest) {
		return closest, true
	}
	if correctSide(other) {
		return other, true
	}
	return geom.Point{}, false
}

// closerEndpoint returns whichever of candidate's two endpoints is
// nearer to from.
func closerEndpoint(candidate *traversal.Edge, from geom.Point) geom.Point {
	left, right := candidate.LeftNode(), candidate.RightNode()
	if left.Distance(from) <= right.Distance(from) {
		return left
	}
	return right
}

func jumpEdgeName(sourceName string, dir external.Direction) string {
	return fmt.Sprintf("%s:jump:%d", sourceName, dir)
}

func fallEdgeName(sourceName string, dir external.Direction) string {
	return fmt.Sprintf("%s:fall:%d", sourceName, dir)
}
