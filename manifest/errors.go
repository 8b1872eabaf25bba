package manifest

import "github.com/giantswarm/assetcache/internal/sentinel"

// Sentinel errors for inspection with errors.Is.
const (
	// ErrMissingKind is returned when a document lacks a 'kind' field.
	ErrMissingKind = sentinel.Error("missing kind in document")

	// ErrNoDocuments is returned when a file contains no non-empty document.
	ErrNoDocuments = sentinel.Error("no documents in file")

	// ErrMultipleDocuments is returned by Typed when a file holds more than
	// one document.
	ErrMultipleDocuments = sentinel.Error("more than one document in file")

	// ErrUnexpectedKind is returned by CRDs for documents that are not
	// apiextensions.k8s.io/v1 CustomResourceDefinitions.
	ErrUnexpectedKind = sentinel.Error("unexpected kind")
)
