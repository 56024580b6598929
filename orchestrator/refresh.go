package orchestrator

import (
	"github.com/katalvlaran/platracer/external"
	"github.com/katalvlaran/platracer/geom"
	"github.com/katalvlaran/platracer/traversal"
)

// refreshGraph performs spec.md's diff-based Refresh: compute the
// delete/insert/modify sets against the prior tick's observed
// rectangles, cascade-remove the stale side, insert the fresh side,
// expand the refresh set into the affected jump/fall neighborhood, and
// relink it. It returns false if any underlying graph mutation failed,
// leaving the caller to schedule a full rebuild.
func (o *Orchestrator) refreshGraph(scene []external.ObjectHandle, currentRects map[external.ObjectHandle]geom.Rect) bool {
	current := make(map[external.ObjectHandle]struct{}, len(scene))
	for _, obj := range scene {
		current[obj] = struct{}{}
	}

	var toRemove, toInsert []external.ObjectHandle
	for obj := range o.priorRects {
		if _, stillPresent := current[obj]; !stillPresent {
			toRemove = append(toRemove, obj)
		}
	}
	for _, obj := range scene {
		prior, existed := o.priorRects[obj]
		switch {
		case !existed:
			toInsert = append(toInsert, obj)
		case !rectsEqual(prior, currentRects[obj]):
			toRemove = append(toRemove, obj)
			toInsert = append(toInsert, obj)
		}
	}

	for _, obj := range toRemove {
		for _, id := range o.graph.ObjectEdges(obj) {
			if !o.graph.Remove(id, true, ^traversal.Traversing) {
				return false
			}
		}
		delete(o.priorRects, obj)
	}

	var refresh []traversal.EdgeID
	for _, obj := range toInsert {
		ids, ok := o.insertGraphSegments(obj)
		if !ok {
			return false
		}
		refresh = append(refresh, ids...)
		o.priorRects[obj] = currentRects[obj]
	}

	refresh = o.expandRefreshNeighborhood(refresh)
	return o.linkRefreshSet(refresh)
}

// rectsEqual compares two rectangles within geom.Epsilon on every
// side, treating sub-epsilon drift as "unchanged" so floating-point
// noise alone never triggers a spurious modify.
func rectsEqual(a, b geom.Rect) bool {
	const eps = geom.Epsilon
	return abs(a.Top-b.Top) <= eps && abs(a.Bottom-b.Bottom) <= eps &&
		abs(a.Left-b.Left) <= eps && abs(a.Right-b.Right) <= eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// expandRefreshNeighborhood adds to refresh the edges of every object
// whose spatial footprint overlaps the jump/fall query rectangles
// anchored at any refresh edge's endpoints, so platforms that did not
// themselves change but sit in the landing zone of a changed edge are
// relinked too.
func (o *Orchestrator) expandRefreshNeighborhood(refresh []traversal.EdgeID) []traversal.EdgeID {
	seen := make(map[traversal.EdgeID]struct{}, len(refresh))
	out := make([]traversal.EdgeID, len(refresh))
	copy(out, refresh)
	for _, id := range refresh {
		seen[id] = struct{}{}
	}

	for _, id := range refresh {
		edge := o.graph.Edge(id)
		if edge == nil {
			continue
		}
		for _, areaRect := range o.neighborhoodRects(edge) {
			for _, item := range o.index.Find(areaRect) {
				for _, adjID := range o.graph.ObjectEdges(item.Owner) {
					if _, dup := seen[adjID]; dup {
						continue
					}
					seen[adjID] = struct{}{}
					out = append(out, adjID)
				}
			}
		}
	}
	return out
}

// neighborhoodRects returns the four jump/fall query rectangles (one
// jump and one fall area per direction) anchored at edge's endpoints,
// matching the linkers' own query geometry.
func (o *Orchestrator) neighborhoodRects(edge *traversal.Edge) []geom.Rect {
	rects := make([]geom.Rect, 0, 4)
	for _, dir := range []external.Direction{external.Left, external.Right} {
		endpoint := edgeEndpoint(edge, dir)
		anchor := offsetAnchor(endpoint, dir, o.agentWidth)
		rects = append(rects,
			jumpAnchorRect(o.arcs.JumpArcBoundingRect(dir), anchor, dir),
			fallAnchorRect(o.arcs.FallArcBoundingRect(dir), anchor),
		)
	}
	return rects
}
