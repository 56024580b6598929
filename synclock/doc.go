// Package synclock provides the reader-preferring, timed mutex the
// spatial index and the traversal graph are built on.
//
// The host game loop drives both structures single-threaded, but
// diagnostic overlays and background readers may query them from other
// goroutines. Rather than risk an overlay stalling a frame, every
// acquisition carries a timeout: callers that cannot get the lock in
// time take the benign-default path instead of blocking, as spec'd for
// the R-tree and traversal graph.
package synclock
