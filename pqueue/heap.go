package pqueue

// Item is anything that can be ordered in the queue by a float64
// priority. Lower priority values are dequeued first.
type Item interface {
	Priority() float64
}

// entry pairs a user Item with a monotonic sequence number so that
// items with equal priority come back out in the order they were
// enqueued, matching the spec's insertion-order tie-break.
type entry struct {
	item Item
	seq  uint64
}

// Queue is a binary min-heap ordered by ascending Item.Priority().
type Queue struct {
	entries []entry
	nextSeq uint64
}

// New returns an empty queue with room for at least capacity items.
func New(capacity int) *Queue {
	return &Queue{entries: make([]entry, 0, capacity)}
}

// Count returns the number of items currently queued.
func (q *Queue) Count() int { return len(q.entries) }

// Peek returns the minimum item without removing it. ok is false if
// the queue is empty.
func (q *Queue) Peek() (item Item, ok bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	return q.entries[0].item, true
}

// Enqueue inserts item and restores the heap property by sifting it up
// from the last position. O(log n).
func (q *Queue) Enqueue(item Item) {
	e := entry{item: item, seq: q.nextSeq}
	q.nextSeq++
	q.entries = append(q.entries, e)
	q.siftUp(len(q.entries) - 1)
}

// Dequeue removes and returns the minimum item. O(log n).
func (q *Queue) Dequeue() (item Item, ok bool) {
	n := len(q.entries)
	if n == 0 {
		return nil, false
	}

	min := q.entries[0]
	last := q.entries[n-1]
	q.entries = q.entries[:n-1]
	if n > 1 {
		q.entries[0] = last
		q.siftDown(0)
	}
	return min.item, true
}

func (q *Queue) less(i, j int) bool {
	pi, pj := q.entries[i].item.Priority(), q.entries[j].item.Priority()
	if pi != pj {
		return pi < pj
	}
	return q.entries[i].seq < q.entries[j].seq
}

func (q *Queue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.entries[i], q.entries[parent] = q.entries[parent], q.entries[i]
		i = parent
	}
}

func (q *Queue) siftDown(i int) {
	n := len(q.entries)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < n && q.less(left, smallest) {
			smallest = left
		}
		if right < n && q.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.entries[i], q.entries[smallest] = q.entries[smallest], q.entries[i]
		i = smallest
	}
}
