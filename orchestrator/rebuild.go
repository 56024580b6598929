package orchestrator

import (
	"github.com/katalvlaran/platracer/external"
	"github.com/katalvlaran/platracer/geom"
	"github.com/katalvlaran/platracer/rtree"
	"github.com/katalvlaran/platracer/traversal"
)

// rtreeInflate is the per-axis padding applied to every spatial-index
// entry, tolerating edges that meet exactly at a shared coordinate.
const rtreeInflate = 0.01

// rebuildIndex clears the spatial index and reinserts one entry per
// top-face sub-segment of every object in scene, returning each
// object's freshly observed bounding rectangle. The index is always
// rebuilt from scratch, whether this tick performs a full graph
// RebuildAll or an incremental Refresh. It returns ok=false if any
// Clear/Insert call failed (lock timeout), leaving the caller to
// schedule a full rebuild.
func (o *Orchestrator) rebuildIndex(scene []external.ObjectHandle) (currentRects map[external.ObjectHandle]geom.Rect, ok bool) {
	if !o.index.Clear() {
		return nil, false
	}

	currentRects = make(map[external.ObjectHandle]geom.Rect, len(scene))
	var key rtree.Key
	for _, obj := range scene {
		currentRects[obj] = o.objects.BoundingRectangle(obj)

		lines, ok := o.segmentLines(obj)
		if !ok {
			continue
		}
		for _, line := range lines {
			rect := segmentLineRect(line).Inflate(rtreeInflate, rtreeInflate)
			if !o.index.Insert(key, rect, obj, line) {
				return nil, false
			}
			key++
		}
	}
	return currentRects, true
}

// rebuildGraph performs spec.md's RebuildAll: clear the graph, insert
// every object's traversal segments, then link jump/fall connectors
// across the entire freshly-built segment set. It returns false if any
// underlying graph mutation failed.
func (o *Orchestrator) rebuildGraph(scene []external.ObjectHandle, currentRects map[external.ObjectHandle]geom.Rect) bool {
	if !o.graph.Clear() {
		return false
	}
	o.priorRects = make(map[external.ObjectHandle]geom.Rect, len(scene))

	var refresh []traversal.EdgeID
	for _, obj := range scene {
		ids, ok := o.insertGraphSegments(obj)
		if !ok {
			return false
		}
		refresh = append(refresh, ids...)
		o.priorRects[obj] = currentRects[obj]
	}
	return o.linkRefreshSet(refresh)
}

// insertGraphSegments builds a Traversing/FlowAll edge for every
// sub-segment of obj's top face and adds it to the graph, returning
// the new edges' IDs. It returns ok=false if any Add call failed.
func (o *Orchestrator) insertGraphSegments(obj external.ObjectHandle) (ids []traversal.EdgeID, ok bool) {
	lines, ok := o.segmentLines(obj)
	if !ok {
		return nil, true
	}

	name := o.objects.Name(obj)
	ids = make([]traversal.EdgeID, 0, len(lines))
	for i, line := range lines {
		edge := traversal.NewEdge(segmentEdgeName(name, i), line, traversal.Traversing, traversal.FlowAll, 1)
		if !o.graph.Add(edge, obj) {
			return nil, false
		}
		ids = append(ids, edge.ID)
	}
	return ids, true
}
