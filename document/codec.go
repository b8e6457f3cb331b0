package document

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Parse decodes YAML or JSON text into a Node tree. Mapping key order is
// preserved from the source; duplicate keys keep the last occurrence.
func Parse(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		// Empty input decodes to a zero node
		return NewNull(), nil
	}
	return fromYAML(&root)
}

func fromYAML(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return NewNull(), nil
		}
		return fromYAML(y.Content[0])

	case yaml.AliasNode:
		return fromYAML(y.Alias)

	case yaml.ScalarNode:
		switch y.Tag {
		case "!!null":
			return NewNull(), nil
		case "!!bool":
			b, err := strconv.ParseBool(y.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid boolean literal %q", y.Line, y.Value)
			}
			return NewBool(b), nil
		case "!!int":
			n, ok := intNumberNode(y.Value)
			if !ok {
				return nil, fmt.Errorf("line %d: integer literal out of range: %s", y.Line, y.Value)
			}
			return n, nil
		case "!!float":
			n, ok := floatNumberNode(y.Value)
			if !ok {
				return nil, fmt.Errorf("line %d: invalid float literal: %s", y.Line, y.Value)
			}
			return n, nil
		default:
			// !!str plus anything exotic (timestamps, binary) kept as text
			return NewString(y.Value), nil
		}

	case yaml.SequenceNode:
		seq := &Node{Kind: KindSequence, Items: make([]*Node, 0, len(y.Content))}
		for _, item := range y.Content {
			child, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			seq.Items = append(seq.Items, child)
		}
		return seq, nil

	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i+1 < len(y.Content); i += 2 {
			keyNode := y.Content[i]
			if keyNode.Kind == yaml.AliasNode {
				keyNode = keyNode.Alias
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: non-scalar mapping key", keyNode.Line)
			}
			val, err := fromYAML(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(keyNode.Value, val)
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d", y.Kind)
	}
}

// EncodeYAML serializes the node tree as YAML, emitting mapping keys in
// insertion order.
func (n *Node) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(n.toYAML())
}

func (n *Node) toYAML() *yaml.Node {
	switch n.Kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.boolVal)}
	case KindNumber:
		tag := "!!float"
		if n.isInt {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: n.raw}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.raw}
	case KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.Items {
			out.Content = append(out.Content, item.toYAML())
		}
		return out
	case KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, p := range n.Pairs {
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
				p.Value.toYAML())
		}
		return out
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// EncodeJSON serializes the node tree as compact JSON, emitting mapping keys
// in insertion order. Numeric literals are passed through verbatim when they
// are already valid JSON.
func (n *Node) EncodeJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	return n.EncodeJSON()
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	switch n.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.boolVal))
	case KindNumber:
		if json.Valid([]byte(n.raw)) {
			buf.WriteString(n.raw)
		} else {
			// Non-JSON literal forms (0x10, 1_000) fall back to the parsed value
			buf.WriteString(strconv.FormatFloat(n.floatVal, 'g', -1, 64))
		}
	case KindString:
		escaped, err := json.Marshal(n.raw)
		if err != nil {
			return err
		}
		buf.Write(escaped)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, p := range n.Pairs {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(p.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := p.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode node of kind %s", n.Kind)
	}
	return nil
}
