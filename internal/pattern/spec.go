package pattern

import (
	"fmt"
)

// Entry is one source rule of an ordering specification: a textual pattern
// and the key order to apply where it matches.
type Entry struct {
	Pattern string
	Keys    []string
}

type rule struct {
	pattern Pattern
	keys    []string
}

// Spec is a compiled ordering specification. A Spec is immutable after
// Compile and safe to share between concurrent reorder walks.
type Spec struct {
	rules []rule
}

// Compile parses every entry eagerly so that a malformed pattern fails the
// whole specification up front instead of silently never matching.
// Declaration order of the entries is preserved for tie-breaking.
func Compile(entries []Entry) (*Spec, error) {
	s := &Spec{rules: make([]rule, 0, len(entries))}

	for _, e := range entries {
		p, err := Parse(e.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile ordering: %w", err)
		}

		s.rules = append(s.rules, rule{pattern: p, keys: e.Keys})
	}

	return s, nil
}

// Match returns the key order for the mapping node at path, or false when no
// rule applies. When several rules match the same path, the most specific
// one wins (fewest wildcard segments); remaining ties go to the rule
// declared first. With strict wildcard matching all rules matching one path
// share the same wildcard positions, so in practice the first-declared rule
// decides; the specificity comparison keeps the policy explicit.
func (s *Spec) Match(path []Segment) ([]string, bool) {
	best := -1

	for i, r := range s.rules {
		if !r.pattern.Matches(path) {
			continue
		}

		if best < 0 || r.pattern.Wildcards() < s.rules[best].pattern.Wildcards() {
			best = i
		}
	}

	if best < 0 {
		return nil, false
	}

	return s.rules[best].keys, true
}

// Len returns the number of compiled rules.
func (s *Spec) Len() int {
	return len(s.rules)
}
