package tree

import (
	"ordered-yaml/internal/pattern"
)

// Reorder returns a fresh tree in which every mapping's key order has been
// rewritten according to spec. The input tree is not modified. Scalars and
// sequence lengths pass through untouched; only mapping key order changes.
//
// For a fixed input and spec the output is identical on every call: the walk
// depends only on entry order, never on map iteration.
func Reorder(n *Node, spec *pattern.Spec) *Node {
	return reorder(n, nil, spec)
}

func reorder(n *Node, path []pattern.Segment, spec *pattern.Spec) *Node {
	switch n.Kind {
	case KindScalar:
		// Leaf values are never mutated, sharing them is safe.
		return n

	case KindSequence:
		// Elements are matched structurally, not by index: every element
		// extends the path by the same sequence-descent step.
		elemPath := append(path, pattern.Elem())

		items := make([]*Node, len(n.Items))
		for i, item := range n.Items {
			items[i] = reorder(item, elemPath, spec)
		}

		return Sequence(items)

	case KindMapping:
		// Children first, each under its own literal key step.
		entries := make([]Entry, len(n.Entries))
		for i, e := range n.Entries {
			entries[i] = Entry{
				Key:   e.Key,
				Value: reorder(e.Value, append(path, pattern.Key(e.Key)), spec),
			}
		}

		keys, ok := spec.Match(path)
		if !ok {
			return Mapping(entries)
		}

		return Mapping(applyOrder(entries, keys))

	default:
		panic("unhandled node kind " + n.Kind.String())
	}
}

// applyOrder places the listed keys first, in list order, skipping keys the
// mapping does not have; the remaining entries follow in their original
// relative order. No key is ever added or dropped.
func applyOrder(entries []Entry, keys []string) []Entry {
	position := make(map[string]int, len(entries))
	for i, e := range entries {
		position[e.Key] = i
	}

	placed := make(map[string]struct{}, len(keys))
	out := make([]Entry, 0, len(entries))

	for _, k := range keys {
		i, present := position[k]
		if !present {
			continue
		}

		if _, dup := placed[k]; dup {
			continue
		}

		placed[k] = struct{}{}
		out = append(out, entries[i])
	}

	for _, e := range entries {
		if _, done := placed[e.Key]; !done {
			out = append(out, e)
		}
	}

	return out
}
