package tree

// Entry is one key/value pair of a mapping node.
type Entry struct {
	Key   string
	Value *Node
}

// Node is a tagged variant over the three YAML data shapes. Exactly one of
// the payload fields is meaningful, selected by Kind. Nodes form a strict
// hierarchy: a parent exclusively owns its children, cycles are not
// representable by construction.
type Node struct {
	Kind Kind

	// Value holds the scalar payload (KindScalar only). A nil Value is the
	// YAML null.
	Value any

	// Items holds the elements in order (KindSequence only).
	Items []*Node

	// Entries holds the key/value pairs in iteration order (KindMapping
	// only). Keys are unique.
	Entries []Entry
}

// Scalar returns a leaf node holding v.
func Scalar(v any) *Node {
	return &Node{Kind: KindScalar, Value: v}
}

// Sequence returns a sequence node over the given elements.
func Sequence(items []*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// Mapping returns a mapping node over the given ordered entries.
func Mapping(entries []Entry) *Node {
	return &Node{Kind: KindMapping, Entries: entries}
}

// Keys returns the mapping keys in iteration order. It returns nil for
// non-mapping nodes.
func (n *Node) Keys() []string {
	if n.Kind != KindMapping {
		return nil
	}

	keys := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		keys[i] = e.Key
	}

	return keys
}

// Get returns the value under key of a mapping node, or false.
func (n *Node) Get(key string) (*Node, bool) {
	if n.Kind != KindMapping {
		return nil, false
	}

	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return nil, false
}
