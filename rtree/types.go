package rtree

import "github.com/katalvlaran/platracer/geom"

// Key identifies one inserted item.
type Key uint64

// Item is the payload stored at a leaf: the owning object reference,
// its bounding rectangle, and the geometry (a platform top-face
// sub-segment) that rectangle was derived from.
type Item[T any] struct {
	Key      Key
	Rect     geom.Rect
	Owner    T
	Geometry geom.Line
}

// entry is either a leaf entry (item != nil) or a branch entry
// (child != nil), never both.
type entry[T any] struct {
	rect  geom.Rect
	item  *Item[T]
	child *node[T]
}

// node is either a leaf, holding item entries directly, or a branch,
// holding entries that point at child nodes.
type node[T any] struct {
	leaf    bool
	entries []entry[T]
	rect    geom.Rect
}

func newLeaf[T any]() *node[T] {
	return &node[T]{leaf: true}
}
