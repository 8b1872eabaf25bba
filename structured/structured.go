// Package structured provides assetcache loaders that decode configuration
// files into caller-defined Go values.
//
// JSONC accepts JSON with comments and trailing commas (HuJSON), TOML
// decodes TOML documents, and YAML decodes YAML through its JSON form so
// that `json` struct tags apply. Unknown fields are rejected by all three.
package structured

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/tailscale/hujson"
	"sigs.k8s.io/yaml"

	"github.com/giantswarm/assetcache/internal/sentinel"
)

// ErrUnknownField is returned by TOML when the document sets keys that V
// does not declare.
const ErrUnknownField = sentinel.Error("unknown field")

func read(path string, fs billy.Filesystem) ([]byte, error) {
	b, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// JSONC loads a JSON-with-comments file into a V.
type JSONC[V any] struct{}

// Load implements assetcache.Loader.
func (JSONC[V]) Load(path string, fs billy.Filesystem) (V, error) {
	var v V

	b, err := read(path, fs)
	if err != nil {
		return v, err
	}
	std, err := hujson.Standardize(b)
	if err != nil {
		return v, fmt.Errorf("parse %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

// TOML loads a TOML file into a V.
type TOML[V any] struct{}

// Load implements assetcache.Loader.
func (TOML[V]) Load(path string, fs billy.Filesystem) (V, error) {
	var v V

	b, err := read(path, fs)
	if err != nil {
		return v, err
	}

	md, err := toml.Decode(string(b), &v)
	if err != nil {
		return v, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return v, ErrUnknownField.Withf("%s: %v", path, undecoded)
	}
	return v, nil
}

// YAML loads a YAML file into a V.
type YAML[V any] struct{}

// Load implements assetcache.Loader.
func (YAML[V]) Load(path string, fs billy.Filesystem) (V, error) {
	var v V

	b, err := read(path, fs)
	if err != nil {
		return v, err
	}
	if err := yaml.UnmarshalStrict(b, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}
