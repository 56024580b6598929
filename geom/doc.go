// Package geom provides the axis-aligned geometry primitives shared by
// the spatial index, the traversal graph, and the pathfinding
// orchestrator: points, line segments, and rectangles, plus the derived
// measurements the rest of the engine builds on.
//
// All types are plain values; every method is pure. Points key into
// traversal.Graph's node table via PointKey, which collapses
// floating-point noise onto a 0.01-unit grid.
package geom
