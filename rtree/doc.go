// Package rtree implements a 2D rectangle R-tree with Guttman's
// quadratic-split node-overflow strategy, used as the spatial index
// over platform top-face segments.
//
// The tree is rebuilt from scratch every orchestrator maintenance tick
// (see the orchestrator's rebuildIndex), so it only needs to support Insert, Find, and
// Clear — no delete/update path is required. It is generic over the
// payload's owner type so callers are not forced through a runtime
// polymorphic item interface; platracer instantiates it over
// external.ObjectHandle.
//
// All mutating and querying operations go through a synclock.TimedRWMutex:
// a caller that cannot acquire the lock within the configured timeout
// gets a benign empty/zero result instead of blocking.
package rtree
