// Package logging holds the package-level slog logger shared by assetcache
// and its loader packages.
package logging
