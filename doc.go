// Package platracer is a dynamic 2D pathfinding engine for a
// platformer agent chasing a moving target across rectangular
// platforms via walk, jump, and fall moves.
//
// Four collaborating subsystems do the work:
//
//	rtree/        — quadratic-split spatial index over platform geometry
//	traversal/    — concurrent node/edge graph of walk/jump/fall links
//	orchestrator/ — incremental graph maintenance and per-tick steering
//	pathsolve/    — A* over the traversal graph
//
// A host embeds Engine, implements the five interfaces in package
// external to expose its scene, and calls Tick once per frame:
//
//	eng := platracer.New(config.Default(), agentWidth, scene, objects, controller, arcs, steering)
//	eng.Tick(dt)
//
// The remaining packages support those four: geom (points, lines,
// rectangles), pqueue (the A* open set), synclock (the timed
// reader/writer lock), config, external, and platracerlog. See
// DESIGN.md for what each package serves.
package platracer
