package tree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encode converts the tree into a yaml.Node ready for emission. Mapping
// iteration order is carried over verbatim; all nodes use the default
// (block) style, so the emitter produces indentation-based YAML.
func Encode(n *Node) (*yaml.Node, error) {
	switch n.Kind {
	case KindScalar:
		return encodeScalar(n.Value)

	case KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for i, item := range n.Items {
			child, err := Encode(item)
			if err != nil {
				return nil, fmt.Errorf("sequence element %d: %w", i, err)
			}

			out.Content = append(out.Content, child)
		}

		return out, nil

	case KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, e := range n.Entries {
			key, err := encodeScalar(e.Key)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", e.Key, err)
			}

			value, err := Encode(e.Value)
			if err != nil {
				return nil, fmt.Errorf("value of %q: %w", e.Key, err)
			}

			out.Content = append(out.Content, key, value)
		}

		return out, nil

	default:
		return nil, fmt.Errorf("unhandled node kind %s", n.Kind)
	}
}

func encodeScalar(v any) (*yaml.Node, error) {
	if v == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	var out yaml.Node
	if err := out.Encode(v); err != nil {
		return nil, fmt.Errorf("encode scalar %v: %w", v, err)
	}

	return &out, nil
}
