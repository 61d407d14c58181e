// Package tree provides the tagged-variant node model for YAML data
// (mapping, sequence, scalar), the depth-first reorder walk, and the
// conversion into yaml.Node for block-style emission.
package tree
