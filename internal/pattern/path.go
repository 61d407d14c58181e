package pattern

import (
	"fmt"
	"strings"
)

// Segment is a single step of a path pattern or of a traversal path. A
// wildcard segment stands for descending into a sequence and accepts any
// element position; a literal segment carries the mapping key name.
type Segment struct {
	Name     string
	Wildcard bool
}

// Key returns a literal mapping-key step.
func Key(name string) Segment {
	return Segment{Name: name}
}

// Elem returns a sequence-descent step.
func Elem() Segment {
	return Segment{Wildcard: true}
}

// Pattern is a parsed path pattern. The zero-length pattern addresses the
// document root.
type Pattern struct {
	segments  []Segment
	wildcards int
	raw       string
}

// Parse parses the textual pattern form described in the package
// documentation. Supports: "", "name", "nested.name", "name[*]", "name[]",
// "[]", and stacked suffixes such as "name[][]" for sequences of sequences.
func Parse(raw string) (Pattern, error) {
	if raw == "" {
		return Pattern{}, nil
	}

	var segments []Segment

	wildcards := 0

	for _, part := range strings.Split(raw, ".") {
		if part == "" {
			return Pattern{}, fmt.Errorf("invalid pattern %q: empty segment", raw)
		}

		// Strip trailing sequence-descent suffixes; each one contributes
		// a wildcard step after the literal name.
		name := part
		descents := 0

		for {
			if strings.HasSuffix(name, "[*]") {
				name = strings.TrimSuffix(name, "[*]")
				descents++

				continue
			}

			if strings.HasSuffix(name, "[]") {
				name = strings.TrimSuffix(name, "[]")
				descents++

				continue
			}

			break
		}

		if strings.ContainsAny(name, "[]") {
			return Pattern{}, fmt.Errorf("invalid pattern %q: malformed segment %q", raw, part)
		}

		if name != "" {
			segments = append(segments, Key(name))
		}

		for i := 0; i < descents; i++ {
			segments = append(segments, Elem())
		}

		wildcards += descents
	}

	return Pattern{segments: segments, wildcards: wildcards, raw: raw}, nil
}

// Matches reports whether the pattern matches the given traversal path.
// Patterns match only paths of equal length: a literal segment requires a
// key step with the same name, a wildcard segment requires a sequence step.
func (p Pattern) Matches(path []Segment) bool {
	if len(p.segments) != len(path) {
		return false
	}

	for i, seg := range p.segments {
		if seg.Wildcard != path[i].Wildcard {
			return false
		}

		if !seg.Wildcard && seg.Name != path[i].Name {
			return false
		}
	}

	return true
}

// Wildcards returns the number of wildcard segments, the pattern's
// specificity measure (fewer wildcards means more specific).
func (p Pattern) Wildcards() int {
	return p.wildcards
}

// Len returns the number of segments.
func (p Pattern) Len() int {
	return len(p.segments)
}

// String returns the textual form the pattern was parsed from.
func (p Pattern) String() string {
	return p.raw
}
