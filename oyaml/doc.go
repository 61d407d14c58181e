// Package oyaml renders nested data as block-style YAML with
// deterministic, user-controlled key ordering.
//
// An ordering specification maps path patterns to the key order to apply at
// every mapping node the pattern addresses. Keys listed in a rule come
// first (in rule order, skipping keys the mapping does not have), all other
// keys follow in their original relative order. Nothing is ever added or
// dropped; only key order changes.
//
// # Path patterns
//
// Patterns are dot-separated. A plain segment names a mapping key; a
// "[*]" or "[]" suffix passes transparently through a sequence and applies
// the rule to each element independently (both spellings are equivalent).
// The empty pattern addresses the document root.
//
//	""                          the top-level mapping
//	"metadata"                  the mapping under "metadata"
//	"spec.containers[*]"        every element of that sequence
//
// # Usage
//
//	doc, err := oyaml.New(data, oyaml.Ordering{
//		{Pattern: "", Keys: []string{"apiVersion", "kind", "metadata", "spec"}},
//		{Pattern: "metadata", Keys: []string{"name", "labels"}},
//	})
//	if err != nil {
//		return err
//	}
//
//	text, err := doc.Dumps()
//
// Malformed patterns fail New up front: a silently dropped rule would make
// an intended reorder silently not happen.
//
// # Input values
//
// New accepts oyaml.Map (insertion-ordered pairs), map[string]any, []any,
// plain scalars, *yaml.Node, and anything else gopkg.in/yaml.v3 can
// marshal (structs, typed maps and slices). Plain Go maps carry no
// iteration order, so their keys are sorted to keep output deterministic;
// use Map or *yaml.Node input when the fallback "original" key order must
// be author-controlled.
//
// A Document is immutable after New and safe for concurrent use.
package oyaml
