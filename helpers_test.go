package assetcache_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

var errNotFound = errors.New("not found")

// sizeLoader loads the byte length of a file below the directory passed as
// resources and counts how often each path was requested.
type sizeLoader struct {
	mu    sync.Mutex
	calls map[string]int
}

func newSizeLoader() *sizeLoader {
	return &sizeLoader{calls: make(map[string]int)}
}

func (l *sizeLoader) Load(path string, dir string) (int, error) {
	l.mu.Lock()
	l.calls[path]++
	l.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(dir, path))
	if errors.Is(err, fs.ErrNotExist) {
		return 0, errNotFound
	}
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

func (l *sizeLoader) count(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[path]
}

func (l *sizeLoader) total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.calls {
		n += c
	}
	return n
}

// writeFile writes size bytes to name below dir.
func writeFile(t *testing.T, dir, name string, size int) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
