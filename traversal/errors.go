package traversal

import "errors"

// ErrLockTimeout is returned by AStar when it could not acquire the
// graph's write lock within the configured timeout. The graph is left
// unchanged. Add, Remove, and Clear report the same condition as a
// plain false return.
var ErrLockTimeout = errors.New("traversal: lock acquisition timed out")

// ErrInvariantViolation is returned by AStar when the graph's
// structural invariant fails (an edge referencing a missing node, or
// a node whose adjacency set has drifted out of sync with the edge
// table). Add and Remove enforce the same invariant but report the
// same failure as a plain false return, indistinguishable from a lock
// timeout; either signals the caller should trigger a full rebuild on
// the next tick, per spec's error-handling design.
var ErrInvariantViolation = errors.New("traversal: structural invariant violated")
