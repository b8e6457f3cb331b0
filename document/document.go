package document

import "strconv"

// Kind identifies which variant a Node holds.
type Kind uint8

const (
	// KindNull is the YAML/JSON null value.
	KindNull Kind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindNumber is a numeric scalar (integer or float).
	KindNumber
	// KindString is a text scalar.
	KindString
	// KindSequence is an ordered list of nodes.
	KindSequence
	// KindMapping is an ordered map with unique string keys.
	KindMapping
)

// String returns the kind name for error messages and logging.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Pair is a single key/value entry of a mapping node.
type Pair struct {
	Key   string
	Value *Node
}

// Node is a tagged tree value representing any parsed document node.
//
// Mappings preserve insertion order and enforce unique keys, matching the
// behavior of YAML documents as authored. Scalars keep their original
// source literal so numbers round-trip without reformatting.
type Node struct {
	Kind Kind

	boolVal  bool
	raw      string // string value, or the verbatim number literal
	intVal   int64
	isInt    bool
	floatVal float64

	// Items holds sequence elements. Only set for KindSequence.
	Items []*Node
	// Pairs holds mapping entries in insertion order. Only set for KindMapping.
	Pairs []Pair
}

// NewNull returns a null node.
func NewNull() *Node { return &Node{Kind: KindNull} }

// NewBool returns a boolean node.
func NewBool(v bool) *Node { return &Node{Kind: KindBool, boolVal: v} }

// NewInt returns an integer number node.
func NewInt(v int64) *Node {
	return &Node{Kind: KindNumber, raw: strconv.FormatInt(v, 10), intVal: v, isInt: true, floatVal: float64(v)}
}

// NewFloat returns a floating point number node.
func NewFloat(v float64) *Node {
	return &Node{Kind: KindNumber, raw: strconv.FormatFloat(v, 'g', -1, 64), floatVal: v}
}

// NewString returns a string node.
func NewString(v string) *Node { return &Node{Kind: KindString, raw: v} }

// NewSequence returns a sequence node holding the given items.
func NewSequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node { return &Node{Kind: KindMapping} }

// intNumberNode builds a number node from an integer source literal, keeping
// the literal verbatim for round-tripping. Returns false when the literal
// does not fit in 64 bits; there is no silent widening to float, so
// out-of-range integer literals surface as parse errors.
func intNumberNode(literal string) (*Node, bool) {
	if i, err := strconv.ParseInt(literal, 0, 64); err == nil {
		return &Node{Kind: KindNumber, raw: literal, intVal: i, isInt: true, floatVal: float64(i)}, true
	}
	if u, err := strconv.ParseUint(literal, 0, 64); err == nil {
		return &Node{Kind: KindNumber, raw: literal, floatVal: float64(u)}, true
	}
	return nil, false
}

// floatNumberNode builds a number node from a floating point source literal.
func floatNumberNode(literal string) (*Node, bool) {
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		return &Node{Kind: KindNumber, raw: literal, floatVal: f}, true
	}
	return nil, false
}

// Bool returns the boolean payload. Valid only for KindBool.
func (n *Node) Bool() bool { return n.boolVal }

// Str returns the string payload. Valid only for KindString.
func (n *Node) Str() string { return n.raw }

// NumberLiteral returns the verbatim numeric source literal.
func (n *Node) NumberLiteral() string { return n.raw }

// Int64 returns the integer payload and whether the number is an integer
// that fits in int64.
func (n *Node) Int64() (int64, bool) { return n.intVal, n.isInt }

// Float64 returns the numeric payload as a float.
func (n *Node) Float64() float64 { return n.floatVal }

// Get returns the value stored under key in a mapping node.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	for _, p := range n.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Set stores value under key, replacing an existing entry in place so the
// original insertion order is preserved.
func (n *Node) Set(key string, value *Node) {
	for i, p := range n.Pairs {
		if p.Key == key {
			n.Pairs[i].Value = value
			return
		}
	}
	n.Pairs = append(n.Pairs, Pair{Key: key, Value: value})
}

// Delete removes the entry under key and reports whether it existed.
func (n *Node) Delete(key string) bool {
	for i, p := range n.Pairs {
		if p.Key == key {
			n.Pairs = append(n.Pairs[:i], n.Pairs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries or elements in a container node.
func (n *Node) Len() int {
	switch n.Kind {
	case KindSequence:
		return len(n.Items)
	case KindMapping:
		return len(n.Pairs)
	default:
		return 0
	}
}

// Keys returns the mapping keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.Pairs))
	for _, p := range n.Pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

// Ref returns the $ref target when this node is a reference node: a mapping
// containing the reserved "$ref" key with a string value. Any sibling keys
// are documentation-only and do not affect reference-ness.
func (n *Node) Ref() (string, bool) {
	if n == nil || n.Kind != KindMapping {
		return "", false
	}
	v, ok := n.Get("$ref")
	if !ok || v.Kind != KindString {
		return "", false
	}
	return v.Str(), true
}

// Replace overwrites this node in place with the contents of other.
// Used by the rewriter to splice resolved content over a reference node.
func (n *Node) Replace(other *Node) {
	*n = *other
}

// DeepCopy returns a structurally independent copy of the node.
func (n *Node) DeepCopy() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:     n.Kind,
		boolVal:  n.boolVal,
		raw:      n.raw,
		intVal:   n.intVal,
		isInt:    n.isInt,
		floatVal: n.floatVal,
	}
	if n.Items != nil {
		out.Items = make([]*Node, len(n.Items))
		for i, it := range n.Items {
			out.Items[i] = it.DeepCopy()
		}
	}
	if n.Pairs != nil {
		out.Pairs = make([]Pair, len(n.Pairs))
		for i, p := range n.Pairs {
			out.Pairs[i] = Pair{Key: p.Key, Value: p.Value.DeepCopy()}
		}
	}
	return out
}

// Equal reports structural equality. Mapping comparison is order-sensitive
// because insertion order is part of the document model.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case KindNull:
		return true
	case KindBool:
		return n.boolVal == other.boolVal
	case KindNumber:
		if n.isInt && other.isInt {
			return n.intVal == other.intVal
		}
		return n.floatVal == other.floatVal
	case KindString:
		return n.raw == other.raw
	case KindSequence:
		if len(n.Items) != len(other.Items) {
			return false
		}
		for i := range n.Items {
			if !n.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(n.Pairs) != len(other.Pairs) {
			return false
		}
		for i := range n.Pairs {
			if n.Pairs[i].Key != other.Pairs[i].Key {
				return false
			}
			if !n.Pairs[i].Value.Equal(other.Pairs[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
