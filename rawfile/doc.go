// Package rawfile provides assetcache loaders that return file contents
// unparsed.
//
// Bytes and Size read through a go-billy filesystem, which lets callers load
// from the OS (osfs), from memory (memfs) or from any other billy backend.
// LockedBytes reads straight from the OS while holding a shared file lock, and
// Write is its producer-side counterpart: it replaces a file atomically under
// the exclusive lock, so a concurrent LockedBytes never sees a partial file.
package rawfile
