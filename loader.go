package assetcache

// Loader turns a path into an asset of type T. R is whatever context the
// load needs (a filesystem, options, a client); use struct{} when none is
// required.
//
// Load should be deterministic per path. A Manager calls it at most once for
// every path that loads successfully. Implementations used with Preload must
// be safe for concurrent use.
type Loader[T, R any] interface {
	Load(path string, resources R) (T, error)
}

// LoaderFunc adapts an ordinary function to the Loader interface.
type LoaderFunc[T, R any] func(path string, resources R) (T, error)

// Load calls f(path, resources).
func (f LoaderFunc[T, R]) Load(path string, resources R) (T, error) {
	return f(path, resources)
}
