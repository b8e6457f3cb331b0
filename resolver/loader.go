package resolver

import (
	"bytes"
	"os"

	"github.com/apiweld/apiweld/document"
	"github.com/apiweld/apiweld/welderrors"
)

const (
	// overflowLiteral is an out-of-range integer literal that appears in a
	// known upstream corpus and cannot be represented as a number. When a
	// parse fails and the raw text contains it, the loader substitutes
	// repairedLiteral (the largest representable unsigned integer) and
	// retries once.
	overflowLiteral = "18446744073709552000"
	repairedLiteral = "18446744073709551615"
)

// loadFile reads and parses the document at path, memoizing the parsed tree
// by the exact path argument. The cached value is the original unmodified
// parse; callers that rewrite it must copy first.
func (r *refResolver) loadFile(path string) (*document.Node, error) {
	if doc, ok := r.cache[path]; ok {
		return doc, nil
	}

	if len(r.cache) >= r.maxCached {
		return nil, &welderrors.ResourceLimitError{
			ResourceType: "cached_documents",
			Limit:        int64(r.maxCached),
			Actual:       int64(len(r.cache)),
			Message:      "too many distinct files referenced",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &welderrors.IOError{Path: path, Cause: err}
	}
	if int64(len(data)) > r.maxFileSize {
		return nil, &welderrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        r.maxFileSize,
			Actual:       int64(len(data)),
			Message:      path,
		}
	}

	doc, err := document.Parse(data)
	if err != nil {
		if !bytes.Contains(data, []byte(overflowLiteral)) {
			return nil, &welderrors.ParseError{Path: path, Cause: err}
		}
		repaired := bytes.ReplaceAll(data, []byte(overflowLiteral), []byte(repairedLiteral))
		doc, err = document.Parse(repaired)
		if err != nil {
			return nil, &welderrors.ParseError{Path: path, Repaired: true, Cause: err}
		}
		r.log.Warn("repaired out-of-range integer literal",
			"path", path, "literal", overflowLiteral)
	}

	r.cache[path] = doc
	return doc, nil
}
