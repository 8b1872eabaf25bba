package assetcache

import (
	"fmt"
	"log/slog"
)

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("assetcache: %s must not be empty", name))
	}
}

// Option configures a Manager during construction via NewManager.
//
// Some With* functions panic on invalid input. Option values are normally
// constants, so an invalid value is a programmer error and fails fast at
// construction, like regexp.MustCompile.
type Option func(*managerConfig)

// WithLogger sets the logger the Manager emits its debug trace to. Without
// it, the Manager uses the package-level logger configured by SetLogger.
//
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("assetcache: logger must not be nil")
	}
	return func(c *managerConfig) {
		c.Logger = l
	}
}

// WithKind sets the asset kind name reported in log events. The default is
// the Go type name of the asset, e.g. "[]uint8".
//
// Panics if kind is empty.
func WithKind(kind string) Option {
	requireNonEmpty("kind", kind)
	return func(c *managerConfig) {
		c.Kind = kind
	}
}

// PreloadOption configures a single Preload call.
type PreloadOption func(*preloadConfig)

// WithWorkers caps the number of loader calls Preload runs concurrently.
//
// Default: DefaultPreloadWorkers.
//
// Panics if n <= 0.
func WithWorkers(n int) PreloadOption {
	if n <= 0 {
		panic(fmt.Sprintf("assetcache: workers must be greater than 0, got %d", n))
	}
	return func(c *preloadConfig) {
		c.Workers = n
	}
}
