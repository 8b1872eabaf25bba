package manifest

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"
)

// Documents loads every document of a manifest file as an unstructured
// object, in file order. Empty and comment-only documents are skipped.
type Documents struct{}

// Load implements assetcache.Loader.
func (Documents) Load(path string, fs billy.Filesystem) ([]*unstructured.Unstructured, error) {
	docs, err := readDocuments(path, fs)
	if err != nil {
		return nil, err
	}

	objs := make([]*unstructured.Unstructured, 0, len(docs))
	for i, doc := range docs {
		obj, err := decodeUnstructured(doc)
		if err != nil {
			return nil, fmt.Errorf("%s doc %d: %w", path, i+1, err)
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// CRDs loads every document of a manifest file as a
// CustomResourceDefinition. Any other kind fails the whole file.
type CRDs struct{}

// Load implements assetcache.Loader.
func (CRDs) Load(path string, fs billy.Filesystem) ([]*apiextensionsv1.CustomResourceDefinition, error) {
	objs, err := Documents{}.Load(path, fs)
	if err != nil {
		return nil, err
	}

	want := apiextensionsv1.SchemeGroupVersion.WithKind("CustomResourceDefinition")
	crds := make([]*apiextensionsv1.CustomResourceDefinition, 0, len(objs))
	for i, obj := range objs {
		if gvk := obj.GroupVersionKind(); gvk != want {
			return nil, ErrUnexpectedKind.Withf("%s doc %d: %s, want %s", path, i+1, gvk, want)
		}

		crd := &apiextensionsv1.CustomResourceDefinition{}
		if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, crd); err != nil {
			return nil, fmt.Errorf("%s doc %d: convert %s: %w", path, i+1, obj.GetName(), err)
		}
		crds = append(crds, crd)
	}
	return crds, nil
}

// Typed loads a single-document manifest into a value of type O, typically
// an API object such as corev1.ConfigMap.
type Typed[O any] struct{}

// Load implements assetcache.Loader.
func (Typed[O]) Load(path string, fs billy.Filesystem) (O, error) {
	var obj O

	docs, err := readDocuments(path, fs)
	if err != nil {
		return obj, err
	}
	if len(docs) > 1 {
		return obj, ErrMultipleDocuments.Withf("%s has %d", path, len(docs))
	}

	if err := yaml.UnmarshalStrict(docs[0], &obj); err != nil {
		return obj, fmt.Errorf("decode %s: %w", path, err)
	}
	return obj, nil
}
