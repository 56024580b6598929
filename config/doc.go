// Package config holds the tunable options for the spatial index and
// the pathfinding orchestrator, following the teacher library's
// plain-struct-plus-DefaultX-constructor convention for algorithm
// options (compare gridgraph.GridOptions, flow.FlowOptions).
package config
