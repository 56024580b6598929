// Package external declares the thin, pure adapter contracts the
// orchestrator drives every tick: scene enumeration, per-object
// geometry and naming, the standing-platform controller, ballistic arc
// sampling, and the agent's steering output. None of these interfaces
// carry business logic; the host game loop supplies concrete
// implementations backed by its physics/rendering engine.
package external
