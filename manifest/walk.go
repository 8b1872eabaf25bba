package manifest

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/giantswarm/assetcache"
)

// Walk returns all YAML files below dir in fsys, sorted for determinism.
func Walk(fsys billy.Filesystem, dir string) ([]string, error) {
	var files []string
	err := util.Walk(fsys, dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", dir, err)
	}
	slices.Sort(files)
	return files, nil
}

// Handles returns an unloaded handle for every YAML file below dir, in the
// order Walk lists them.
func Handles[T any](fsys billy.Filesystem, dir string) ([]*assetcache.Handle[T], error) {
	files, err := Walk(fsys, dir)
	if err != nil {
		return nil, err
	}

	hs := make([]*assetcache.Handle[T], len(files))
	for i, f := range files {
		h := assetcache.NewHandle[T](f)
		hs[i] = &h
	}
	return hs, nil
}
