package oyaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseOrdering parses an ordering specification from YAML text. The
// document must be a mapping from path pattern to a list of key names:
//
//	"": [apiVersion, kind, metadata, spec]
//	metadata: [name, labels]
//	spec.containers[*]: [name, image]
//
// Declaration order is preserved for rule precedence, which is why the
// document is read through yaml.Node instead of a Go map. Patterns
// themselves are validated later, when the Ordering is compiled by New.
func ParseOrdering(data []byte) (Ordering, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse ordering: %w", err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("ordering document must be a mapping, not %s", root.Tag)
	}

	seen := make(map[string]struct{}, len(root.Content)/2)
	rules := make(Ordering, 0, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		if _, dup := seen[key.Value]; dup {
			return nil, fmt.Errorf("duplicate pattern %q at line %d", key.Value, key.Line)
		}

		seen[key.Value] = struct{}{}

		var keys []string
		if err := value.Decode(&keys); err != nil {
			return nil, fmt.Errorf("pattern %q: keys must be a list of strings: %w", key.Value, err)
		}

		rules = append(rules, Rule{Pattern: key.Value, Keys: keys})
	}

	return rules, nil
}

// LoadOrderingFile reads an ordering specification from a YAML file.
func LoadOrderingFile(path string) (Ordering, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ordering file %s: %w", path, err)
	}

	return ParseOrdering(data)
}
