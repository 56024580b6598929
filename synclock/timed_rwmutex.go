package synclock

import (
	"sync"
	"sync/atomic"
	"time"
)

// pollInterval is the initial backoff between TryLock attempts while
// racing a deadline. It doubles on each miss, capped at pollIntervalMax,
// so short contention resolves almost immediately while long contention
// doesn't spin hot.
const pollInterval = 25 * time.Microsecond
const pollIntervalMax = 2 * time.Millisecond

// TimedRWMutex is a reader-preferring reader/writer lock where every
// acquisition carries its own timeout: a caller that cannot get the
// lock in time gets false back instead of blocking indefinitely. Each
// timeout increments a counter for diagnostics (see Stats).
//
// Reader preference follows the classic two-mutex construction: the
// first reader to arrive takes the underlying resource lock and the
// last reader to leave releases it; writers contend for the same
// resource lock directly. A writer therefore waits behind any readers
// already in the critical section, but does not block new readers from
// joining once at least one is present.
type TimedRWMutex struct {
	readTimeout  time.Duration
	writeTimeout time.Duration

	counterMu sync.Mutex // guards readers; the first reader holds it while acquiring resource
	readers   int
	resource  sync.Mutex // held by the writer, or by readers via the first-in/last-out protocol

	readTimeouts  atomic.Uint64
	writeTimeouts atomic.Uint64
}

// New returns a TimedRWMutex with the given reader and writer timeouts.
func New(readTimeout, writeTimeout time.Duration) *TimedRWMutex {
	return &TimedRWMutex{readTimeout: readTimeout, writeTimeout: writeTimeout}
}

// Stats reports the cumulative number of read and write acquisitions
// that gave up after timing out.
func (m *TimedRWMutex) Stats() (readTimeouts, writeTimeouts uint64) {
	return m.readTimeouts.Load(), m.writeTimeouts.Load()
}

// RLock attempts to acquire a read lock within the configured reader
// timeout. It returns false, without blocking further, if it could not.
func (m *TimedRWMutex) RLock() bool {
	deadline := time.Now().Add(m.readTimeout)
	if !tryLockUntil(&m.counterMu, deadline) {
		m.readTimeouts.Add(1)
		return false
	}
	defer m.counterMu.Unlock()

	// The first reader takes resource on behalf of all readers while
	// still holding counterMu, so no later reader can enter before it.
	if m.readers == 0 && !tryLockUntil(&m.resource, deadline) {
		m.readTimeouts.Add(1)
		return false
	}
	m.readers++
	return true
}

// RUnlock releases a read lock previously acquired with a successful
// RLock call.
func (m *TimedRWMutex) RUnlock() {
	m.counterMu.Lock()
	m.readers--
	last := m.readers == 0
	m.counterMu.Unlock()

	if last {
		m.resource.Unlock()
	}
}

// Lock attempts to acquire the exclusive write lock within the
// configured writer timeout.
func (m *TimedRWMutex) Lock() bool {
	deadline := time.Now().Add(m.writeTimeout)
	if tryLockUntil(&m.resource, deadline) {
		return true
	}
	m.writeTimeouts.Add(1)
	return false
}

// Unlock releases a write lock previously acquired with a successful
// Lock call.
func (m *TimedRWMutex) Unlock() {
	m.resource.Unlock()
}

// tryLockUntil polls mu.TryLock with exponential backoff until it
// succeeds or deadline passes.
func tryLockUntil(mu *sync.Mutex, deadline time.Time) bool {
	if mu.TryLock() {
		return true
	}

	wait := pollInterval
	for time.Now().Before(deadline) {
		time.Sleep(wait)
		if mu.TryLock() {
			return true
		}
		wait *= 2
		if wait > pollIntervalMax {
			wait = pollIntervalMax
		}
	}
	return false
}
