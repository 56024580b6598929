package pathsolve

import (
	"errors"
	"math"

	"github.com/katalvlaran/platracer/pqueue"
)

// ErrEdgeNotFound is returned when the origin or destination edge is
// not present in the graph.
var ErrEdgeNotFound = errors.New("pathsolve: origin or destination edge not found")

// openItem is the A* open-set entry: an edge plus the f-cost it was
// enqueued with. If the edge's current f-cost (per the graph's
// transient fields) no longer matches by the time this item is
// dequeued, it is a stale duplicate left over from a cheaper relaxation
// and is discarded instead of reprocessed.
type openItem struct {
	edge uint64
	f    float64
}

func (i openItem) Priority() float64 { return i.f }

// Solve runs A* from start to goal over g, returning the ordered edge
// path from start to goal inclusive, or an empty slice if goal is
// unreachable. The heuristic is the Euclidean distance between edge
// centroids, which is admissible and consistent for a geometric graph,
// so the search terminates as soon as goal is popped.
func Solve(g Graph, start, goal uint64) ([]uint64, error) {
	if !g.Exists(start) || !g.Exists(goal) {
		return nil, ErrEdgeNotFound
	}

	g.ResetTransient()

	h0 := heuristic(g, start, goal)
	g.SetTransient(start, 0, h0, 0, false)

	open := pqueue.New(16)
	open.Enqueue(openItem{edge: start, f: h0})

	for open.Count() > 0 {
		raw, _ := open.Dequeue()
		item := raw.(openItem)
		cur := item.edge

		_, curF, _, _ := g.Transient(cur)
		if item.f != curF {
			continue // stale entry superseded by a cheaper relaxation
		}

		if cur == goal {
			return reconstruct(g, start, goal), nil
		}

		curG, _, _, _ := g.Transient(cur)
		for _, next := range g.AdjacentEdges(cur) {
			if next == cur {
				continue
			}
			cost := edgeCost(g, next, cur)
			candidate := curG + cost
			if math.IsInf(candidate, 1) {
				continue
			}

			nextG, _, _, _ := g.Transient(next)
			if candidate < nextG {
				f := candidate + heuristic(g, next, goal)
				g.SetTransient(next, candidate, f, cur, true)
				open.Enqueue(openItem{edge: next, f: f})
			}
		}
	}

	return []uint64{}, nil
}

// edgeCost is next's segment length, or +Inf if relaxing into next from
// cur would enter it via a side its flow direction forbids.
func edgeCost(g Graph, next, cur uint64) float64 {
	cost := g.EdgeLength(next)

	if g.EntersViaStart(next, cur) && !g.AllowsFlowIntoStart(next) {
		return math.Inf(1)
	}
	if g.EntersViaEnd(next, cur) && !g.AllowsFlowIntoEnd(next) {
		return math.Inf(1)
	}
	return cost
}

func heuristic(g Graph, a, b uint64) float64 {
	return g.EdgeCentroid(a).Distance(g.EdgeCentroid(b))
}

func reconstruct(g Graph, start, goal uint64) []uint64 {
	var path []uint64
	cur := goal
	for {
		path = append(path, cur)
		if cur == start {
			break
		}
		_, _, pred, hasPred := g.Transient(cur)
		if !hasPred {
			break
		}
		cur = pred
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
