package oyaml

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	"ordered-yaml/internal/tree"
)

// ErrCyclicInput reports input that reaches itself through one of its own
// children. Ownership of input data must be strictly hierarchical.
var ErrCyclicInput = errors.New("cyclic input structure")

// Item is one key/value pair of a Map.
type Item struct {
	Key   string
	Value any
}

// Map is an insertion-ordered mapping literal. Use it (or *yaml.Node input)
// when the fallback key order of unlisted keys must be author-controlled;
// plain Go maps have no iteration order and get their keys sorted instead.
type Map []Item

type converter struct {
	active      map[uintptr]struct{}
	activeNodes map[*yaml.Node]struct{}
}

// fromValue converts an arbitrary input value into the internal tree.
func fromValue(v any) (*tree.Node, error) {
	c := &converter{
		active:      map[uintptr]struct{}{},
		activeNodes: map[*yaml.Node]struct{}{},
	}

	return c.value(v)
}

func (c *converter) value(v any) (*tree.Node, error) {
	if v == nil {
		return tree.Scalar(nil), nil
	}

	if id, ok := containerID(v); ok {
		if _, seen := c.active[id]; seen {
			return nil, fmt.Errorf("%w (%T value contains itself)", ErrCyclicInput, v)
		}

		c.active[id] = struct{}{}
		defer delete(c.active, id)
	}

	switch tv := v.(type) {
	case Map:
		return c.orderedMap(tv)

	case map[string]any:
		return c.sortedMap(tv)

	case []any:
		items := make([]*tree.Node, len(tv))

		for i, elem := range tv {
			child, err := c.value(elem)
			if err != nil {
				return nil, err
			}

			items[i] = child
		}

		return tree.Sequence(items), nil

	case *yaml.Node:
		return c.yamlNode(tv)

	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return tree.Scalar(tv), nil

	default:
		return c.roundTrip(tv)
	}
}

func (c *converter) orderedMap(m Map) (*tree.Node, error) {
	seen := make(map[string]struct{}, len(m))
	entries := make([]tree.Entry, 0, len(m))

	for _, item := range m {
		if _, dup := seen[item.Key]; dup {
			return nil, fmt.Errorf("duplicate mapping key %q", item.Key)
		}

		seen[item.Key] = struct{}{}

		child, err := c.value(item.Value)
		if err != nil {
			return nil, err
		}

		entries = append(entries, tree.Entry{Key: item.Key, Value: child})
	}

	return tree.Mapping(entries), nil
}

// sortedMap converts a plain Go map. Iteration order of Go maps is
// unspecified, so keys are sorted to keep the fallback order deterministic.
func (c *converter) sortedMap(m map[string]any) (*tree.Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	entries := make([]tree.Entry, 0, len(keys))

	for _, k := range keys {
		child, err := c.value(m[k])
		if err != nil {
			return nil, err
		}

		entries = append(entries, tree.Entry{Key: k, Value: child})
	}

	return tree.Mapping(entries), nil
}

func (c *converter) yamlNode(n *yaml.Node) (*tree.Node, error) {
	if _, seen := c.activeNodes[n]; seen {
		return nil, fmt.Errorf("%w (yaml node alias loop at line %d)", ErrCyclicInput, n.Line)
	}

	c.activeNodes[n] = struct{}{}
	defer delete(c.activeNodes, n)

	switch n.Kind {
	case 0:
		// Zero node, e.g. from unmarshalling empty input.
		return tree.Scalar(nil), nil

	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return tree.Scalar(nil), nil
		}

		return c.yamlNode(n.Content[0])

	case yaml.AliasNode:
		return c.yamlNode(n.Alias)

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode scalar at line %d: %w", n.Line, err)
		}

		return tree.Scalar(v), nil

	case yaml.SequenceNode:
		items := make([]*tree.Node, len(n.Content))

		for i, elem := range n.Content {
			child, err := c.yamlNode(elem)
			if err != nil {
				return nil, err
			}

			items[i] = child
		}

		return tree.Sequence(items), nil

	case yaml.MappingNode:
		seen := make(map[string]struct{}, len(n.Content)/2)
		entries := make([]tree.Entry, 0, len(n.Content)/2)

		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]

			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("non-scalar mapping key at line %d", key.Line)
			}

			if _, dup := seen[key.Value]; dup {
				return nil, fmt.Errorf("duplicate mapping key %q at line %d", key.Value, key.Line)
			}

			seen[key.Value] = struct{}{}

			child, err := c.yamlNode(value)
			if err != nil {
				return nil, err
			}

			entries = append(entries, tree.Entry{Key: key.Value, Value: child})
		}

		return tree.Mapping(entries), nil

	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", n.Kind, n.Line)
	}
}

// roundTrip converts values this package has no direct case for (structs,
// typed maps and slices) by pushing them through the YAML codec once.
// yaml.v3 sorts Go map keys itself, so the result stays deterministic.
func (c *converter) roundTrip(v any) (*tree.Node, error) {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert %T input: %w", v, err)
	}

	var n yaml.Node
	if err := yaml.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("convert %T input: %w", v, err)
	}

	return c.yamlNode(&n)
}

// containerID returns a stable identity for cyclic-reference tracking.
// Zero-length slices all share the runtime's zero-size allocation, so only
// non-empty containers are tracked.
func containerID(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		if rv.IsNil() || rv.Len() == 0 {
			return 0, false
		}

		return rv.Pointer(), true

	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}

		return rv.Pointer(), true

	default:
		return 0, false
	}
}
