package assetcache

import "log/slog"

// managerConfig holds configuration for a Manager.
type managerConfig struct {
	Logger *slog.Logger // nil uses the package-level logger (see SetLogger)
	Kind   string       // empty uses the Go type name of T
}

// preloadConfig holds configuration for a single Preload call.
type preloadConfig struct {
	Workers int
}

// defaultManagerConfig returns a managerConfig populated with default values.
func defaultManagerConfig() managerConfig {
	return managerConfig{}
}

// defaultPreloadConfig returns a preloadConfig populated with default values.
func defaultPreloadConfig() preloadConfig {
	return preloadConfig{Workers: DefaultPreloadWorkers}
}
