// Package document provides the tree value type used throughout apiweld.
//
// A Node is a tagged union over the six YAML/JSON value kinds: null, bool,
// number, string, sequence, and mapping. Mappings preserve insertion order
// and enforce unique keys, so a resolved document serializes in the same
// key order it was authored in. A mapping containing the reserved "$ref"
// key is a reference node; see Node.Ref.
//
// Parse decodes YAML or JSON (the YAML parser accepts both), and
// EncodeYAML/EncodeJSON serialize a tree back out in source order.
package document
