// Package pathsolve implements the A* shortest-path search over a
// traversal graph's edges, with directional flow constraints folded
// into the per-edge cost.
//
// It depends only on a small structural Graph interface rather than on
// package traversal directly, so traversal.Graph can both implement
// this interface and expose a convenience AStar method without the two
// packages importing each other.
package pathsolve
