package oyaml

import (
	"sort"
)

// Rule binds one path pattern to the key order applied where it matches.
type Rule struct {
	Pattern string
	Keys    []string
}

// Ordering is a full ordering specification in declaration order.
// Declaration order matters: when two rules of equal specificity match the
// same node, the rule declared first wins.
type Ordering []Rule

// OrderingFromMap builds an Ordering from a pattern-to-keys map. Go maps
// carry no declaration order, so patterns are sorted lexicographically to
// keep rule precedence deterministic.
func OrderingFromMap(m map[string][]string) Ordering {
	patterns := make([]string, 0, len(m))
	for p := range m {
		patterns = append(patterns, p)
	}

	sort.Strings(patterns)

	rules := make(Ordering, 0, len(m))
	for _, p := range patterns {
		rules = append(rules, Rule{Pattern: p, Keys: m[p]})
	}

	return rules
}
