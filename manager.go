package assetcache

import (
	"context"
	"iter"
	"log/slog"
	"reflect"

	"github.com/giantswarm/assetcache/internal/logging"
)

// Manager stores loaded assets of type T and deduplicates loads by path.
//
// Storage is append-only: once a handle is loaded at a slot, that slot holds
// the same value for the rest of the Manager's lifetime. There is no removal.
//
// A Manager is not safe for concurrent use. Load needs exclusive access to
// both the Manager and the handle being resolved; Get, Lookup, Len and All may
// run concurrently with each other only while no Load is in flight. Wrap the
// Manager in a Locked to share it between goroutines.
type Manager[T, R any] struct {
	loader Loader[T, R]
	cfg    managerConfig

	// assets[i] is the value stored at slot i and paths[i] is the path it
	// was loaded from. index maps a path back to its slot.
	assets []*T
	paths  []string
	index  map[string]int
}

// NewManager returns an empty Manager that loads assets with loader.
//
// Panics if loader is nil or if an option receives an invalid value.
func NewManager[T, R any](loader Loader[T, R], opts ...Option) *Manager[T, R] {
	if loader == nil {
		panic("assetcache: loader must not be nil")
	}

	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Kind == "" {
		cfg.Kind = kindOf[T]()
	}

	return &Manager[T, R]{
		loader: loader,
		cfg:    cfg,
		index:  make(map[string]int),
	}
}

// kindOf names the asset type for log output.
func kindOf[T any]() string {
	return reflect.TypeFor[T]().String()
}

// Kind returns the asset kind name used in log events.
func (m *Manager[T, R]) Kind() string {
	return m.cfg.Kind
}

func (m *Manager[T, R]) logger() *slog.Logger {
	if m.cfg.Logger != nil {
		return m.cfg.Logger
	}
	return logging.Logger()
}

// Get returns the asset h refers to if h is loaded. It never triggers a load.
// Handles loaded at the same slot return the same pointer.
func (m *Manager[T, R]) Get(h *Handle[T]) (*T, bool) {
	if h == nil || h.state != stateLoaded {
		return nil, false
	}
	return m.assets[h.slot], true
}

// Lookup returns the asset already loaded from path. It never triggers a load.
func (m *Manager[T, R]) Lookup(path string) (*T, bool) {
	slot, ok := m.index[path]
	if !ok {
		return nil, false
	}
	return m.assets[slot], true
}

// Len returns the number of loaded assets.
func (m *Manager[T, R]) Len() int {
	return len(m.assets)
}

// All yields every loaded asset with the path it was loaded from, in slot order.
func (m *Manager[T, R]) All() iter.Seq2[string, *T] {
	return func(yield func(string, *T) bool) {
		for i, v := range m.assets {
			if !yield(m.paths[i], v) {
				return
			}
		}
	}
}

// Load resolves an unloaded handle.
//
// A handle that is already loaded or failed is left untouched and Load
// returns nil: a failure is not retried on revisit, so retrying a path means
// creating a new handle. For an unloaded handle whose path was loaded before
// by this Manager, the handle takes the existing slot without calling the
// loader. Otherwise the loader runs; on success the value is stored in a new
// slot, on failure the handle becomes failed and the loader's error is
// returned unchanged. Failures are never indexed, so a later handle for the
// same path loads again.
func (m *Manager[T, R]) Load(h *Handle[T], resources R) error {
	if h.state != stateUnloaded {
		return nil
	}
	if slot, ok := m.index[h.path]; ok {
		h.state, h.slot = stateLoaded, slot
		return nil
	}

	v, err := m.invoke(h.path, resources)
	if err != nil {
		h.state, h.err = stateFailed, err
		return err
	}
	h.state, h.slot = stateLoaded, m.commit(h.path, v)
	return nil
}

// invoke calls the loader for path and emits the trace events around it. It
// does not touch Manager storage, so Preload can run it from worker goroutines.
func (m *Manager[T, R]) invoke(path string, resources R) (T, error) {
	logger := m.logger()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("loading asset", "path", path, "kind", m.cfg.Kind)
	}

	v, err := m.loader.Load(path, resources)
	if err != nil {
		logger.Debug("asset load failed", "path", path, "kind", m.cfg.Kind, "err", err)
	}
	return v, err
}

// commit appends v to storage, indexes it under path and returns its slot.
func (m *Manager[T, R]) commit(path string, v T) int {
	slot := len(m.assets)
	m.assets = append(m.assets, &v)
	m.paths = append(m.paths, path)
	m.index[path] = slot
	return slot
}
