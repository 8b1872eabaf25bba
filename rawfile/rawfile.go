package rawfile

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/giantswarm/assetcache/internal/sentinel"
)

// ErrIsDirectory is returned when the path names a directory.
const ErrIsDirectory = sentinel.Error("path is a directory")

// Bytes loads the full contents of a file from the filesystem passed as
// resources.
type Bytes struct{}

// Load implements assetcache.Loader.
func (Bytes) Load(path string, fs billy.Filesystem) ([]byte, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, ErrIsDirectory.Withf("%s", path)
	}

	b, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// Size loads the size in bytes of a file from the filesystem passed as
// resources, without reading its contents.
type Size struct{}

// Load implements assetcache.Loader.
func (Size) Load(path string, fs billy.Filesystem) (int64, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, ErrIsDirectory.Withf("%s", path)
	}
	return info.Size(), nil
}
