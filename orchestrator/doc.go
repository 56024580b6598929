// Package orchestrator drives one maintenance tick of the traversal
// graph and spatial index, and derives the agent's steering input from
// the resulting shortest path. It is the only package that imports
// every other component package: geom, rtree, traversal, pathsolve
// (transitively, via traversal.Graph.AStar), config, external, and
// platracerlog.
package orchestrator
