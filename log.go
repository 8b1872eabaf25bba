package assetcache

import (
	"log/slog"

	"github.com/giantswarm/assetcache/internal/logging"
)

// SetLogger replaces the package-level logger used by every Manager that was
// not given its own logger via WithLogger, and by the loader packages.
//
// If l is nil, the logger resets to slog.Default() with a "component"
// attribute, re-derived on the next use and then cached. Call SetLogger(nil)
// after slog.SetDefault() to pick up changes.
//
// SetLogger is safe to call concurrently with other assetcache operations.
// For a strict happens-before guarantee, call it before starting goroutines
// that use the library.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}
