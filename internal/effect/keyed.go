// Package effect provides "run after commit, keyed by dependency" semantics for
// server-rendered components.
package effect

import "sync"

// Keyed runs its effect once per distinct key value. Committing the same key
// again is a no-op; committing a different key runs the effect with the new key.
// After Stop, commits are ignored.
type Keyed[K comparable] struct {
	mu      sync.Mutex
	run     func(K)
	last    K
	seen    bool
	stopped bool
	fired   int
}

// NewKeyed creates a keyed effect around run.
func NewKeyed[K comparable](run func(K)) *Keyed[K] {
	return &Keyed[K]{run: run}
}

// Commit records key as the value observed by the latest render and runs the
// effect if it differs from the previously committed one. It reports whether
// the effect ran.
func (e *Keyed[K]) Commit(key K) bool {
	e.mu.Lock()
	if e.stopped || (e.seen && e.last == key) {
		e.mu.Unlock()
		return false
	}
	e.last = key
	e.seen = true
	e.fired++
	run := e.run
	e.mu.Unlock()

	// The effect runs outside the lock so it may call back into the owner.
	if run != nil {
		run(key)
	}
	return true
}

// Stop detaches the effect. Pending work is not cancelled, but later commits
// never run it again.
func (e *Keyed[K]) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
}

// Stopped reports whether Stop has been called.
func (e *Keyed[K]) Stopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}

// Last returns the last committed key and whether any key was committed.
func (e *Keyed[K]) Last() (K, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last, e.seen
}

// Runs returns how many times the effect has run.
func (e *Keyed[K]) Runs() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fired
}
