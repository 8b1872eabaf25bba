package assetcache

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// loadResult is the outcome of one loader call made by Preload.
type loadResult[T any] struct {
	value T
	err   error
	done  bool
}

// Preload resolves a batch of handles, running loader calls for distinct new
// paths concurrently on up to WithWorkers goroutines. The loader must be safe
// for concurrent use.
//
// Handles that are already loaded or failed are skipped and handles whose
// path is already stored take its slot, exactly as with Load. Each distinct
// unstored path is loaded once, however many handles in the batch share it.
// Results are stored on the calling goroutine in the order handles first
// mention each path, so the Manager itself is never touched concurrently.
//
// Every handle whose path failed becomes failed with that path's error, and
// Preload returns the distinct failures joined with errors.Join. When ctx is
// done, no further loader calls are started: handles whose path was never
// attempted stay unloaded and the context cause is part of the returned
// error. Loader calls already running are not interrupted.
func Preload[T, R any](
	ctx context.Context,
	m *Manager[T, R],
	handles []*Handle[T],
	resources R,
	opts ...PreloadOption,
) error {
	cfg := defaultPreloadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Collect distinct unstored paths in first-mention order.
	var pending []string
	seen := make(map[string]int)
	for _, h := range handles {
		if h == nil || h.state != stateUnloaded {
			continue
		}
		if _, ok := m.index[h.path]; ok {
			continue
		}
		if _, ok := seen[h.path]; !ok {
			seen[h.path] = len(pending)
			pending = append(pending, h.path)
		}
	}

	results := make([]loadResult[T], len(pending))

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, path := range pending {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			// The context may have ended while this call waited for a worker.
			if ctx.Err() != nil {
				return nil
			}
			v, err := m.invoke(path, resources)
			results[i] = loadResult[T]{value: v, err: err, done: true}
			return nil
		})
	}
	// Workers never return errors; failures are carried in results.
	_ = g.Wait()

	var errs []error
	for i, path := range pending {
		r := results[i]
		switch {
		case !r.done:
		case r.err != nil:
			errs = append(errs, r.err)
		default:
			m.commit(path, r.value)
		}
	}

	for _, h := range handles {
		if h == nil || h.state != stateUnloaded {
			continue
		}
		if slot, ok := m.index[h.path]; ok {
			h.state, h.slot = stateLoaded, slot
			continue
		}
		if i, ok := seen[h.path]; ok && results[i].done {
			h.state, h.err = stateFailed, results[i].err
		}
	}

	if cause := context.Cause(ctx); cause != nil && hasUnattempted(results) {
		errs = append(errs, fmt.Errorf("preload interrupted: %w", cause))
	}
	return errors.Join(errs...)
}

func hasUnattempted[T any](results []loadResult[T]) bool {
	for _, r := range results {
		if !r.done {
			return true
		}
	}
	return false
}
