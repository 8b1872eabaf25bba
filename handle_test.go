package assetcache_test

import (
	"errors"
	"testing"

	"github.com/giantswarm/assetcache"
)

func TestNewHandle_Unloaded(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"relative path": "a.txt",
		"absolute path": "/etc/does/not/exist",
		"empty path":    "",
	}

	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := assetcache.NewHandle[int](path)

			if !h.IsUnloaded() || h.IsLoaded() || h.IsFailed() {
				t.Errorf("state predicates = (%v, %v, %v), want (true, false, false)",
					h.IsUnloaded(), h.IsLoaded(), h.IsFailed())
			}
			got, ok := h.Path()
			if !ok || got != path {
				t.Errorf("Path() = (%q, %v), want (%q, true)", got, ok, path)
			}
			if h.Err() != nil {
				t.Errorf("Err() = %v, want nil", h.Err())
			}
			if _, ok := h.Slot(); ok {
				t.Error("Slot() reported a slot for an unloaded handle")
			}
		})
	}
}

// resolved returns one loaded and one failed handle, both resolved on mgr.
func resolved(t *testing.T) (loaded, failed assetcache.Handle[int]) {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", 3)
	mgr := assetcache.NewManager[int, string](newSizeLoader())

	loaded = assetcache.NewHandle[int]("a.txt")
	if err := mgr.Load(&loaded, dir); err != nil {
		t.Fatalf("Load(a.txt): %v", err)
	}
	failed = assetcache.NewHandle[int]("missing.txt")
	if err := mgr.Load(&failed, dir); err == nil {
		t.Fatal("Load(missing.txt) succeeded, want error")
	}
	return loaded, failed
}

func TestHandle_StatePredicatesExclusive(t *testing.T) {
	t.Parallel()

	loaded, failed := resolved(t)

	if loaded.IsUnloaded() || !loaded.IsLoaded() || loaded.IsFailed() {
		t.Errorf("loaded handle predicates = (%v, %v, %v)", loaded.IsUnloaded(), loaded.IsLoaded(), loaded.IsFailed())
	}
	if failed.IsUnloaded() || failed.IsLoaded() || !failed.IsFailed() {
		t.Errorf("failed handle predicates = (%v, %v, %v)", failed.IsUnloaded(), failed.IsLoaded(), failed.IsFailed())
	}
}

func TestHandle_Path(t *testing.T) {
	t.Parallel()

	loaded, failed := resolved(t)

	if p, ok := loaded.Path(); ok {
		t.Errorf("loaded Path() = (%q, true), want no path", p)
	}
	if p, ok := failed.Path(); !ok || p != "missing.txt" {
		t.Errorf("failed Path() = (%q, %v), want (\"missing.txt\", true)", p, ok)
	}
}

func TestHandle_ErrAndSlot(t *testing.T) {
	t.Parallel()

	loaded, failed := resolved(t)

	if !errors.Is(failed.Err(), errNotFound) {
		t.Errorf("failed Err() = %v, want %v", failed.Err(), errNotFound)
	}
	if loaded.Err() != nil {
		t.Errorf("loaded Err() = %v, want nil", loaded.Err())
	}
	if slot, ok := loaded.Slot(); !ok || slot != 0 {
		t.Errorf("loaded Slot() = (%d, %v), want (0, true)", slot, ok)
	}
	if _, ok := failed.Slot(); ok {
		t.Error("failed handle reported a slot")
	}
}

func TestHandle_CopyIsIndependent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", 1)
	mgr := assetcache.NewManager[int, string](newSizeLoader())

	h := assetcache.NewHandle[int]("a.txt")
	cp := h
	if err := mgr.Load(&h, dir); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !cp.IsUnloaded() {
		t.Error("loading the original changed its copy")
	}
}

func TestHandle_Equal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", 1)
	writeFile(t, dir, "b.txt", 2)
	mgr := assetcache.NewManager[int, string](newSizeLoader())

	load := func(path string) assetcache.Handle[int] {
		h := assetcache.NewHandle[int](path)
		_ = mgr.Load(&h, dir)
		return h
	}

	failWith := func(path string, err error) assetcache.Handle[int] {
		m := assetcache.NewManager[int, struct{}](assetcache.LoaderFunc[int, struct{}](func(string, struct{}) (int, error) {
			return 0, err
		}))
		h := assetcache.NewHandle[int](path)
		_ = m.Load(&h, struct{}{})
		return h
	}

	tests := map[string]struct {
		a, b assetcache.Handle[int]
		want bool
	}{
		"unloaded same path": {
			a: assetcache.NewHandle[int]("a.txt"), b: assetcache.NewHandle[int]("a.txt"), want: true,
		},
		"unloaded different path": {
			a: assetcache.NewHandle[int]("a.txt"), b: assetcache.NewHandle[int]("b.txt"), want: false,
		},
		"loaded same slot": {
			a: load("a.txt"), b: load("a.txt"), want: true,
		},
		"loaded different slot": {
			a: load("a.txt"), b: load("b.txt"), want: false,
		},
		"failed same path different errors": {
			a: failWith("x", errors.New("one")), b: failWith("x", errors.New("two")), want: true,
		},
		"failed different path": {
			a: failWith("x", errNotFound), b: failWith("y", errNotFound), want: false,
		},
		"unloaded vs failed same path": {
			a: assetcache.NewHandle[int]("x"), b: failWith("x", errNotFound), want: false,
		},
		"unloaded vs loaded": {
			a: assetcache.NewHandle[int]("a.txt"), b: load("a.txt"), want: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal() = %v, want %v", got, tc.want)
			}
			if got := tc.a.Key() == tc.b.Key(); got != tc.want {
				t.Errorf("Key() equality = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHandle_KeyAsMapKey(t *testing.T) {
	t.Parallel()

	set := map[assetcache.HandleKey]int{}
	for _, p := range []string{"a", "b", "a", "c", "b"} {
		h := assetcache.NewHandle[string](p)
		set[h.Key()]++
	}

	if len(set) != 3 {
		t.Errorf("len(set) = %d, want 3", len(set))
	}
	if n := set[assetcache.NewHandle[string]("a").Key()]; n != 2 {
		t.Errorf("count for a = %d, want 2", n)
	}
}

func TestHandle_String(t *testing.T) {
	t.Parallel()

	loaded, failed := resolved(t)

	tests := map[string]struct {
		h    assetcache.Handle[int]
		want string
	}{
		"unloaded": {h: assetcache.NewHandle[int]("a.txt"), want: `unloaded("a.txt")`},
		"loaded":   {h: loaded, want: "loaded(slot=0)"},
		"failed":   {h: failed, want: `failed("missing.txt": not found)`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.h.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
