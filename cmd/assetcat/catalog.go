package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/giantswarm/assetcache"
	"github.com/giantswarm/assetcache/manifest"
	"github.com/giantswarm/assetcache/rawfile"
)

// run loads paths with the loader selected by opts.kind and reports them.
func run(ctx context.Context, out io.Writer, fsys billy.Filesystem, opts options, paths []string) error {
	switch opts.kind {
	case "manifest":
		return catalog[[]*unstructured.Unstructured](ctx, out, fsys, opts, paths, manifest.Documents{}, describeDocuments)
	case "crd":
		return catalog[[]*apiextensionsv1.CustomResourceDefinition](ctx, out, fsys, opts, paths, manifest.CRDs{}, describeCRDs)
	default:
		return catalog[[]byte](ctx, out, fsys, opts, paths, rawfile.Bytes{}, describeBytes)
	}
}

// catalog resolves one handle per path on a fresh Manager and prints a line
// per path followed by a summary. It returns an error when any path failed.
func catalog[T any](
	ctx context.Context,
	out io.Writer,
	fsys billy.Filesystem,
	opts options,
	paths []string,
	loader assetcache.Loader[T, billy.Filesystem],
	describe func(*T) string,
) error {
	mgr := assetcache.NewManager(loader, assetcache.WithKind(opts.kind))

	handles := make([]*assetcache.Handle[T], len(paths))
	for i, p := range paths {
		h := assetcache.NewHandle[T](p)
		handles[i] = &h
	}

	if opts.workers > 0 {
		// Failures are reported per handle below.
		if err := assetcache.Preload(ctx, mgr, handles, fsys, assetcache.WithWorkers(opts.workers)); err != nil && ctx.Err() != nil {
			return err
		}
	} else {
		for _, h := range handles {
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}
			_ = mgr.Load(h, fsys)
		}
	}

	failed := 0
	for i, h := range handles {
		if v, ok := mgr.Get(h); ok {
			slot, _ := h.Slot()
			fmt.Fprintf(out, "%s\tslot=%d\t%s\n", paths[i], slot, describe(v))
			continue
		}
		failed++
		fmt.Fprintf(out, "%s\terror: %v\n", paths[i], h.Err())
	}

	fmt.Fprintf(out, "%d arguments, %d %s assets loaded, %d failed\n", len(paths), mgr.Len(), mgr.Kind(), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d arguments failed to load", failed, len(paths))
	}
	return nil
}

func describeBytes(b *[]byte) string {
	return fmt.Sprintf("%d bytes", len(*b))
}

func describeDocuments(objs *[]*unstructured.Unstructured) string {
	parts := make([]string, 0, len(*objs))
	for _, o := range *objs {
		parts = append(parts, o.GetKind()+"/"+o.GetName())
	}
	return strings.Join(parts, ", ")
}

func describeCRDs(crds *[]*apiextensionsv1.CustomResourceDefinition) string {
	names := make([]string, 0, len(*crds))
	for _, c := range *crds {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}
