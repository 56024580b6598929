// Package traversal implements the platform traversal graph: nodes
// keyed by point identity, edges ("links") carrying movement semantics
// and directional flow, and the concurrent add/remove/query surface the
// orchestrator drives once per tick.
//
// Following an arena-storage design, nodes and edges never hold pointers to each other: a Node's adjacency
// list stores EdgeID values and an Edge's endpoints store node point
// keys, all resolved back through the Graph's tables. This avoids the
// cyclic node<->edge references a naive object-graph translation would
// otherwise produce.
package traversal
