package traversal

import "fmt"

// assertInvariant runs check and reports whether it completed without
// panicking. A panic inside check signals a broken structural
// invariant — a programmer error, not an ordinary failure path, per
// the "panics are reserved for programmer errors" convention — and is
// recovered here into a false return so callers can report failure
// (Add and Remove return false, AStar returns ErrInvariantViolation)
// instead of crashing the host.
func assertInvariant(check func()) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	check()
	return true
}

// checkEdgeNodeConsistency panics if any edge references a node that
// does not exist, or a node whose adjacency set does not list the
// edge back. This is the structural invariant every Add/Remove must
// leave intact: every edge is reachable from both its endpoint nodes,
// and every endpoint it names actually exists.
func (g *Graph[O]) checkEdgeNodeConsistency() {
	for id, e := range g.edges {
		startNode, startOK := g.nodes[e.startKey]
		endNode, endOK := g.nodes[e.endKey]
		if !startOK || !endOK {
			panic(fmt.Sprintf("traversal: edge %d references a missing node", id))
		}
		if _, ok := startNode.adjacent[id]; !ok {
			panic(fmt.Sprintf("traversal: edge %d absent from its start node's adjacency", id))
		}
		if _, ok := endNode.adjacent[id]; !ok {
			panic(fmt.Sprintf("traversal: edge %d absent from its end node's adjacency", id))
		}
	}
}
