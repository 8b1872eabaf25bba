package assetcache

import "log/slog"

// ConfigSnapshot holds a copy of managerConfig fields for test assertions.
type ConfigSnapshot struct {
	Logger *slog.Logger
	Kind   string
}

// ApplyOptionsForTesting creates a default managerConfig, applies the given
// options, and returns a ConfigSnapshot of the result.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return ConfigSnapshot{Logger: cfg.Logger, Kind: cfg.Kind}
}

// ApplyPreloadOptionsForTesting returns the worker count resulting from the
// given preload options.
func ApplyPreloadOptionsForTesting(opts ...PreloadOption) int {
	cfg := defaultPreloadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Workers
}
