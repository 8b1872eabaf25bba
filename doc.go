// Package assetcache provides a deduplicating, lazily loading cache for
// assets read from filesystem paths.
//
// Callers describe how one kind of asset is loaded with a [Loader]. A
// [Manager] owns the loaded values and deduplicates by path, while a
// [Handle] is a small copyable token that names an asset by path and tracks
// whether it is unloaded, loaded or failed. Handles never hold the asset, so
// they can be copied and sent between goroutines freely.
//
// # Basic Usage
//
//	import "github.com/giantswarm/assetcache"
//
//	sizes := assetcache.LoaderFunc[int, struct{}](func(path string, _ struct{}) (int, error) {
//	    b, err := os.ReadFile(path)
//	    if err != nil {
//	        return 0, err
//	    }
//	    return len(b), nil
//	})
//
//	mgr := assetcache.NewManager(sizes)
//
//	h := assetcache.NewHandle[int]("a.txt")
//	if err := mgr.Load(&h, struct{}{}); err != nil {
//	    log.Fatal(err)
//	}
//	size, _ := mgr.Get(&h)
//
// A second handle for "a.txt" loaded on the same Manager takes the same slot
// without calling the loader again.
//
// # Failures
//
// A failed load is remembered on the handle ([Handle.IsFailed], [Handle.Err])
// and loading that handle again is a no-op. Failures are not remembered by
// the Manager: a new handle for the same path tries the loader again.
//
// # Concurrency
//
// A Manager is not synchronized. Use [Locked] to share one between
// goroutines, or [Preload] to run loader calls for a batch of handles
// concurrently while storage is updated on the calling goroutine.
//
// # Loaders
//
// The subpackages rawfile, manifest, structured and sqlitekv provide
// ready-made loaders for raw bytes, Kubernetes manifests, configuration files
// and SQLite key/value tables.
package assetcache
