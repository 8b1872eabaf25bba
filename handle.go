package assetcache

import (
	"fmt"
	"strconv"
)

// handleState is the lifecycle tag of a Handle.
type handleState uint8

const (
	stateUnloaded handleState = iota
	stateLoaded
	stateFailed
)

// String implements fmt.Stringer.
func (s handleState) String() string {
	switch s {
	case stateUnloaded:
		return "unloaded"
	case stateLoaded:
		return "loaded"
	case stateFailed:
		return "failed"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

// Handle identifies one requested asset of type T and records how far it has
// progressed toward being loaded. It starts unloaded, and Manager.Load moves
// it to loaded or failed exactly once.
//
// A Handle never stores the asset itself: it holds a state tag, a path, a slot
// index and an error. Copies are independent values that can be passed
// between goroutines regardless of what T is. A loaded slot index is only
// meaningful to the Manager that produced it.
type Handle[T any] struct {
	state handleState
	path  string
	slot  int
	err   error

	// Ties the handle to its asset type without storing one.
	_ [0]*T
}

// NewHandle returns an unloaded handle for path. It never fails: a path that
// does not exist is reported when the handle is loaded.
func NewHandle[T any](path string) Handle[T] {
	return Handle[T]{state: stateUnloaded, path: path}
}

// Path returns the source path while the handle is unloaded or failed. Once
// loaded, the slot identifies the asset and Path returns false.
func (h Handle[T]) Path() (string, bool) {
	if h.state == stateLoaded {
		return "", false
	}
	return h.path, true
}

// IsUnloaded reports whether no load has been attempted yet.
func (h Handle[T]) IsUnloaded() bool { return h.state == stateUnloaded }

// IsLoaded reports whether the asset was loaded successfully.
func (h Handle[T]) IsLoaded() bool { return h.state == stateLoaded }

// IsFailed reports whether a load was attempted and failed.
func (h Handle[T]) IsFailed() bool { return h.state == stateFailed }

// Err returns the loader error that failed this handle, or nil.
func (h Handle[T]) Err() error {
	if h.state != stateFailed {
		return nil
	}
	return h.err
}

// Slot returns the storage slot of a loaded handle.
func (h Handle[T]) Slot() (int, bool) {
	if h.state != stateLoaded {
		return 0, false
	}
	return h.slot, true
}

// HandleKey is a comparable summary of a handle's state, suitable as a map
// key. Two handles have equal keys exactly when Equal reports true.
type HandleKey struct {
	state handleState
	slot  int
	path  string
}

// Key returns the comparable key of h.
func (h Handle[T]) Key() HandleKey {
	if h.state == stateLoaded {
		return HandleKey{state: stateLoaded, slot: h.slot}
	}
	return HandleKey{state: h.state, path: h.path}
}

// Equal reports whether h and other are in the same state for the same
// asset. Loaded handles compare by slot, unloaded and failed handles by path.
// The error of a failed handle is not compared.
func (h Handle[T]) Equal(other Handle[T]) bool {
	return h.Key() == other.Key()
}

// String implements fmt.Stringer.
func (h Handle[T]) String() string {
	switch h.state {
	case stateLoaded:
		return fmt.Sprintf("loaded(slot=%d)", h.slot)
	case stateFailed:
		return fmt.Sprintf("failed(%q: %v)", h.path, h.err)
	default:
		return fmt.Sprintf("%s(%q)", h.state, h.path)
	}
}
