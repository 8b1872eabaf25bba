package rawfile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
)

// Digest loads the hex-encoded SHA-256 of a file's contents, streaming the
// file rather than holding it in memory. It suits assets that are only
// compared or used as cache keys.
type Digest struct{}

// Load implements assetcache.Loader.
func (Digest) Load(path string, fs billy.Filesystem) (string, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", ErrIsDirectory.Withf("%s", path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
