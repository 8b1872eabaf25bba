// Package manifest provides assetcache loaders for Kubernetes manifest files.
//
// Documents decodes every document of a multi-document YAML or JSON file into
// unstructured objects, CRDs decodes CustomResourceDefinitions into their typed
// form, Typed decodes a single-document file into any API type, and KubeConfig
// turns a kubeconfig file into a *rest.Config. All of them read through a
// go-billy filesystem passed as the load resources.
//
// Walk lists the YAML files below a directory so a batch of handles can be
// built and loaded with assetcache.Preload.
package manifest
