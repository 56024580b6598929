// Package pqueue implements a hand-rolled binary min-heap used as the
// open set for the A* solver (and any other priority-ordered work the
// engine needs). It intentionally does not build on container/heap: the
// engine owns this data structure directly so the solver can reason
// about sift-up/sift-down costs without going through heap.Interface's
// Len/Less/Swap/Push/Pop methods; ordering still reads each entry's
// priority through the Item interface.
package pqueue
