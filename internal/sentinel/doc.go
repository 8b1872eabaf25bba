// Package sentinel provides an immutable error type for the sentinel errors
// exported by the assetcache loader packages.
//
// Errors declared with errors.New are variables that consumers can reassign.
// Error is a string type, so sentinels can be declared as const and still
// match through wrapped chains with errors.Is.
package sentinel
