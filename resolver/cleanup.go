package resolver

import (
	"strings"

	"github.com/apiweld/apiweld/document"
)

// isKnownUnresolvable matches the closed set of reference patterns that
// survive the rewrite passes in the source corpus: malformed ancestor
// traversals, targets under a missing shared-attributes area, bare .yml
// filenames without a pointer suffix, and absolute-looking root pointers
// with a known-bad prefix.
func isKnownUnresolvable(ref string) bool {
	switch {
	case strings.Contains(ref, badSharedPrefix):
		return true
	case strings.HasPrefix(ref, "#/api"):
		return true
	case strings.Contains(ref, "node.yml"):
		return true
	case strings.Contains(ref, "shared/attributes/"):
		return true
	case strings.HasSuffix(ref, ".yml") && !strings.Contains(ref, "#"):
		return true
	}
	return false
}

// cleanUnresolved destructively replaces every surviving reference node that
// matches a known-unresolvable pattern with a minimal string-typed schema
// citing the original reference text.
func (r *refResolver) cleanUnresolved(node *document.Node) {
	switch node.Kind {
	case document.KindMapping:
		if ref, ok := node.Ref(); ok && isKnownUnresolvable(ref) {
			r.stats.RefsCleaned++
			r.warn("replacing unresolved reference with fallback schema: " + ref)
			node.Replace(unresolvableRefStub(ref))
			return
		}
		for _, p := range node.Pairs {
			r.cleanUnresolved(p.Value)
		}

	case document.KindSequence:
		for _, item := range node.Items {
			r.cleanUnresolved(item)
		}
	}
}
