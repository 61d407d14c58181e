// Package pattern implements the path grammar that addresses mapping nodes
// inside nested YAML data, and the matcher that picks the key order to apply
// at a given node.
//
// A textual pattern is a dot-separated list of segments:
//
//   - "name" is a literal segment matching a mapping key.
//   - "name[*]" or "name[]" is a literal segment followed by a wildcard
//     segment: descend into the sequence held under that key and match each
//     element independently. Both bracket spellings mean the same thing.
//   - A segment that is exactly "[*]" or "[]" is a lone wildcard segment,
//     for sequences that are not reached through a mapping key (for example
//     a sequence-valued document root).
//   - The empty string is the root pattern: it addresses the top-level
//     mapping only.
//
// Examples:
//
//	""                                -> document root
//	"metadata"                        -> the mapping under the "metadata" key
//	"outerlist.outeritems[*]"         -> each element of that sequence
//	"outerlist.outeritems[].inner[*]" -> each element two sequences deep
//
// Patterns are parsed once, at specification compile time. A malformed
// pattern fails the whole specification: a silently dropped rule would make
// an intended reorder silently not happen.
package pattern
