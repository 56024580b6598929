package orchestrator

import "errors"

// ErrGraphBuildTimeout is returned by Tick when a graph or R-tree
// mutation failed during maintenance — either a write-lock acquisition
// timed out, or a structural invariant check failed. The prior graph
// state is left in place and a full rebuild is scheduled for the next
// tick.
var ErrGraphBuildTimeout = errors.New("orchestrator: graph maintenance failed, scheduling full rebuild")
