package assetcache

import "sync"

// Locked wraps a Manager with a read-write mutex so it can be shared between
// goroutines. Load holds the write lock while the loader runs, which keeps
// the at-most-once guarantee per path. Reads share the read lock.
//
// Handles remain owned by their callers: a handle passed to Load must not be
// read or written by another goroutine until Load returns.
type Locked[T, R any] struct {
	mu sync.RWMutex
	m  *Manager[T, R]
}

// NewLocked returns a Locked wrapping m. The caller must stop using m
// directly.
func NewLocked[T, R any](m *Manager[T, R]) *Locked[T, R] {
	if m == nil {
		panic("assetcache: manager must not be nil")
	}
	return &Locked[T, R]{m: m}
}

// Load resolves h under the write lock. See Manager.Load.
func (l *Locked[T, R]) Load(h *Handle[T], resources R) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Load(h, resources)
}

// Get returns the asset h refers to under the read lock. See Manager.Get.
func (l *Locked[T, R]) Get(h *Handle[T]) (*T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Get(h)
}

// Lookup returns the asset loaded from path under the read lock.
func (l *Locked[T, R]) Lookup(path string) (*T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Lookup(path)
}

// Len returns the number of loaded assets under the read lock.
func (l *Locked[T, R]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Len()
}

// Do runs fn with exclusive access to the underlying Manager, for batch work
// such as Preload.
func (l *Locked[T, R]) Do(fn func(m *Manager[T, R]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.m)
}
