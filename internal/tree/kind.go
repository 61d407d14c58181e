package tree

//go:generate go tool stringer -type=Kind

// Kind discriminates the three node variants.
type Kind int

const (
	KindScalar   Kind = iota // leaf value: string, number, bool, or null
	KindSequence             // ordered list of child nodes
	KindMapping              // ordered key/value pairs with unique string keys
)
