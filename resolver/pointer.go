package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apiweld/apiweld/document"
	"github.com/apiweld/apiweld/welderrors"
)

// applyPointer navigates node by a /-delimited JSON pointer.
//
// An empty pointer or "/" returns node unchanged. Mapping-key misses are not
// errors: after trying the segment and the legacy root-level "definitions"
// sibling, navigation stops and a synthesized open-object stub naming the
// missing segment is returned. Only an invalid or out-of-bounds sequence
// index, or descent into a scalar, raises a PointerError.
func (r *refResolver) applyPointer(node *document.Node, pointer string) (*document.Node, error) {
	if pointer == "" || pointer == "/" {
		return node, nil
	}

	// First segment is the empty string before the leading slash
	segments := strings.Split(pointer, "/")[1:]

	current := node
	for i, segment := range segments {
		segment = unescapePointerToken(segment)

		switch current.Kind {
		case document.KindMapping:
			if next, ok := current.Get(segment); ok {
				current = next
				continue
			}
			// Legacy fallback: root-level names are often authored without
			// their definitions/ prefix
			if defs, ok := current.Get("definitions"); ok && defs.Kind == document.KindMapping {
				if next, ok := defs.Get(segment); ok {
					current = next
					continue
				}
			}
			r.stats.PointerFallbacks++
			r.log.Debug("synthesizing fallback for missing pointer segment",
				"pointer", pointer, "segment", segment)
			return missingSegmentStub(segment), nil

		case document.KindSequence:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 {
				return nil, &welderrors.PointerError{
					Pointer: pointer,
					Segment: segment,
					Message: "invalid sequence index",
				}
			}
			if index >= len(current.Items) {
				return nil, &welderrors.PointerError{
					Pointer: pointer,
					Segment: segment,
					Message: fmt.Sprintf("sequence index out of bounds (length %d)", len(current.Items)),
				}
			}
			current = current.Items[index]

		default:
			return nil, &welderrors.PointerError{
				Pointer: "/" + strings.Join(segments[:i+1], "/"),
				Segment: segment,
				Message: fmt.Sprintf("cannot descend into %s node", current.Kind),
			}
		}
	}

	return current, nil
}

// unescapePointerToken unescapes JSON Pointer tokens.
// Per RFC 6901, ~1 represents / and ~0 represents ~.
func unescapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}
