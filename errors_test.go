package assetcache_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/giantswarm/assetcache/manifest"
	"github.com/giantswarm/assetcache/rawfile"
	"github.com/giantswarm/assetcache/sqlitekv"
	"github.com/giantswarm/assetcache/structured"
)

// publicErrors lists every exported sentinel error of the loader packages.
var publicErrors = []struct {
	name string
	err  error
}{
	{"manifest.ErrMissingKind", manifest.ErrMissingKind},
	{"manifest.ErrMultipleDocuments", manifest.ErrMultipleDocuments},
	{"manifest.ErrNoDocuments", manifest.ErrNoDocuments},
	{"manifest.ErrUnexpectedKind", manifest.ErrUnexpectedKind},
	{"rawfile.ErrIsDirectory", rawfile.ErrIsDirectory},
	{"rawfile.ErrLockNotAcquired", rawfile.ErrLockNotAcquired},
	{"sqlitekv.ErrInvalidIdentifier", sqlitekv.ErrInvalidIdentifier},
	{"structured.ErrUnknownField", structured.ErrUnknownField},
}

// TestPublicErrorConstants verifies that every exported error constant:
//   - implements the error interface (Error() returns a non-empty string)
//   - matches itself via errors.Is
//   - matches itself when wrapped via fmt.Errorf %w
//   - does not match a different error
func TestPublicErrorConstants(t *testing.T) {
	t.Parallel()

	for _, tc := range publicErrors {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if msg := tc.err.Error(); msg == "" {
				t.Errorf("%s.Error() returned empty string", tc.name)
			}
			if !errors.Is(tc.err, tc.err) {
				t.Errorf("errors.Is(%s, %s) = false, want true", tc.name, tc.name)
			}

			wrapped := fmt.Errorf("wrapping: %w", tc.err)
			if !errors.Is(wrapped, tc.err) {
				t.Errorf("errors.Is(wrapped %s) = false, want true", tc.name)
			}

			if errors.Is(tc.err, errors.New(tc.err.Error())) {
				t.Errorf("errors.Is(%s, errors.New(same text)) = true, want false", tc.name)
			}
		})
	}
}

// TestPublicErrorConstantsAreDistinct verifies that no two exported error
// constants are equal to each other.
func TestPublicErrorConstantsAreDistinct(t *testing.T) {
	t.Parallel()

	for i, a := range publicErrors {
		for _, b := range publicErrors[i+1:] {
			if errors.Is(a.err, b.err) || errors.Is(b.err, a.err) {
				t.Errorf("%s and %s match each other: constants must be distinct", a.name, b.name)
			}
		}
	}
}
