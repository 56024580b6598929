package rtree

import (
	"time"

	"github.com/katalvlaran/platracer/geom"
	"github.com/katalvlaran/platracer/synclock"
)

// Tree is a quadratic-split R-tree over rectangles, generic over the
// owner type T carried alongside each leaf's rectangle and geometry.
type Tree[T any] struct {
	root       *node[T]
	maxEntries int
	minEntries int
	count      int

	lock *synclock.TimedRWMutex
}

// New returns an empty Tree. A maxEntries below 3 is replaced by the
// default of 5; minEntries defaults to max(2, floor(0.4*maxEntries)) when given as
// <= 0 or more than half of maxEntries.
func New[T any](maxEntries, minEntries int, readTimeout, writeTimeout time.Duration) *Tree[T] {
	if maxEntries < 3 {
		maxEntries = 5
	}
	computedMin := int(0.4 * float64(maxEntries))
	if computedMin < 2 {
		computedMin = 2
	}
	if minEntries <= 0 || minEntries > maxEntries/2 {
		minEntries = computedMin
	}

	return &Tree[T]{
		root:       newLeaf[T](),
		maxEntries: maxEntries,
		minEntries: minEntries,
		lock:       synclock.New(readTimeout, writeTimeout),
	}
}

// Stats reports the cumulative number of reader/writer lock timeouts.
func (t *Tree[T]) Stats() (readTimeouts, writeTimeouts uint64) {
	return t.lock.Stats()
}

// Count returns the number of items currently stored. Acquires a read
// lock; returns 0 on timeout.
func (t *Tree[T]) Count() int {
	if !t.lock.RLock() {
		return 0
	}
	defer t.lock.RUnlock()
	return t.count
}

// Clear resets the tree to a fresh, empty root. Returns false if the
// writer timeout elapsed before the lock was acquired, in which case
// the tree is left unchanged.
func (t *Tree[T]) Clear() bool {
	if !t.lock.Lock() {
		return false
	}
	defer t.lock.Unlock()

	t.root = newLeaf[T]()
	t.count = 0
	return true
}

// Insert adds an item under key, rect, owner, and geometry. Returns
// false if the writer timeout elapsed before the lock was acquired; the
// tree is left unchanged in that case.
func (t *Tree[T]) Insert(key Key, rect geom.Rect, owner T, geometry geom.Line) bool {
	if !t.lock.Lock() {
		return false
	}
	defer t.lock.Unlock()

	e := entry[T]{rect: rect, item: &Item[T]{Key: key, Rect: rect, Owner: owner, Geometry: geometry}}
	if sibling := t.insertInto(t.root, e); sibling != nil {
		newRoot := &node[T]{
			leaf: false,
			entries: []entry[T]{
				{rect: t.root.rect, child: t.root},
				{rect: sibling.rect, child: sibling},
			},
		}
		newRoot.rect = unionRects(newRoot.entries)
		t.root = newRoot
	}
	t.count++
	return true
}

// Find returns every item whose rectangle intersects rect. Returns nil
// if the reader timeout elapsed before the lock was acquired.
func (t *Tree[T]) Find(rect geom.Rect) []Item[T] {
	if !t.lock.RLock() {
		return nil
	}
	defer t.lock.RUnlock()

	var out []Item[T]
	t.search(t.root, rect, &out)
	return out
}

func (t *Tree[T]) search(n *node[T], rect geom.Rect, out *[]Item[T]) {
	if n.leaf {
		for _, e := range n.entries {
			if e.rect.IntersectsWith(rect) {
				*out = append(*out, *e.item)
			}
		}
		return
	}
	for _, e := range n.entries {
		if e.rect.IntersectsWith(rect) {
			t.search(e.child, rect, out)
		}
	}
}

// insertInto recursively inserts e under n, splitting n and returning
// its new sibling if n overflows maxEntries. The caller is responsible
// for folding a non-nil return into a new root or a branch entry.
func (t *Tree[T]) insertInto(n *node[T], e entry[T]) *node[T] {
	if n.leaf {
		n.entries = append(n.entries, e)
	} else {
		idx := chooseSubtree(n, e.rect)
		child := n.entries[idx].child
		sibling := t.insertInto(child, e)
		n.entries[idx].rect = child.rect
		if sibling != nil {
			n.entries = append(n.entries, entry[T]{rect: sibling.rect, child: sibling})
		}
	}
	n.rect = unionRects(n.entries)

	if len(n.entries) > t.maxEntries {
		sibling := t.split(n)
		n.rect = unionRects(n.entries)
		sibling.rect = unionRects(sibling.entries)
		return sibling
	}
	return nil
}

// chooseSubtree picks the entry whose bounding rectangle needs the
// least enlargement to include rect, breaking ties by smallest area.
func chooseSubtree[T any](n *node[T], rect geom.Rect) int {
	best := 0
	bestEnl := n.entries[0].rect.MergeEnlargement(rect)
	bestArea := n.entries[0].rect.Area()
	for i := 1; i < len(n.entries); i++ {
		enl := n.entries[i].rect.MergeEnlargement(rect)
		area := n.entries[i].rect.Area()
		if enl < bestEnl || (enl == bestEnl && area < bestArea) {
			best = i
			bestEnl = enl
			bestArea = area
		}
	}
	return best
}

func unionRects[T any](entries []entry[T]) geom.Rect {
	r := entries[0].rect
	for _, e := range entries[1:] {
		r = r.Merge(e.rect)
	}
	return r
}
