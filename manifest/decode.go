package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	yamlutil "k8s.io/apimachinery/pkg/util/yaml"
)

// yamlDecoderBufferSize is the initial buffer size in bytes for the
// YAML/JSON decoder.
const yamlDecoderBufferSize = 4096

// readDocuments reads path from fs and splits it into its non-empty YAML
// documents. A JSON file is a single document.
func readDocuments(path string, fs billy.Filesystem) ([][]byte, error) {
	content, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	reader := yamlutil.NewYAMLReader(bufio.NewReader(bytes.NewReader(content)))

	var docs [][]byte
	for docNum := 1; ; docNum++ {
		doc, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read yaml doc %d of %s: %w", docNum, path, err)
		}
		if len(bytes.TrimSpace(doc)) == 0 || isCommentOnly(doc) {
			continue
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, ErrNoDocuments.Withf("%s", path)
	}
	return docs, nil
}

// isCommentOnly reports whether every non-blank line of doc is a YAML comment.
func isCommentOnly(doc []byte) bool {
	for line := range strings.Lines(string(doc)) {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return false
		}
	}
	return true
}

// decodeUnstructured decodes a single document into an unstructured object.
func decodeUnstructured(doc []byte) (*unstructured.Unstructured, error) {
	obj := &unstructured.Unstructured{}
	dec := yamlutil.NewYAMLOrJSONDecoder(bytes.NewReader(doc), yamlDecoderBufferSize)
	if err := dec.Decode(obj); err != nil {
		if isMissingKindDecodeError(err) {
			return nil, ErrMissingKind
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if obj.GetKind() == "" {
		return nil, ErrMissingKind
	}
	return obj, nil
}

// missingKindErrSubstring is the prefix produced by runtime's missing kind
// error. The YAML and JSON decode paths wrap that error without Unwrap, so
// the string is the last-resort check.
const missingKindErrSubstring = "Object 'Kind' is missing"

// isMissingKindDecodeError reports whether a decode error indicates a missing
// 'kind' field.
func isMissingKindDecodeError(err error) bool {
	if runtime.IsMissingKind(err) {
		return true
	}
	return strings.Contains(err.Error(), missingKindErrSubstring)
}
