package oyaml

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"ordered-yaml/internal/pattern"
	"ordered-yaml/internal/tree"
)

const defaultIndent = 2

// Option configures a Document at construction.
type Option func(*config) error

type config struct {
	indent int
}

// WithIndent sets the number of spaces per nesting level. The default is 2.
func WithIndent(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("indent must be positive, got %d", n)
		}

		c.indent = n

		return nil
	}
}

// Document holds a reordered tree ready for block-style YAML emission.
type Document struct {
	root   *tree.Node
	indent int
}

// New converts data into the internal tree, compiles the ordering
// specification, and applies it. Malformed patterns, cyclic input, and
// unconvertible values all fail here, before anything is emitted. The
// reordered tree is computed once; Dump and Dumps reuse it, so repeated
// calls produce byte-identical output.
func New(data any, ordering Ordering, opts ...Option) (*Document, error) {
	cfg := config{indent: defaultIndent}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	entries := make([]pattern.Entry, 0, len(ordering))
	for _, r := range ordering {
		entries = append(entries, pattern.Entry{Pattern: r.Pattern, Keys: r.Keys})
	}

	spec, err := pattern.Compile(entries)
	if err != nil {
		return nil, err
	}

	root, err := fromValue(data)
	if err != nil {
		return nil, fmt.Errorf("convert input: %w", err)
	}

	return &Document{
		root:   tree.Reorder(root, spec),
		indent: cfg.indent,
	}, nil
}

// Dumps returns the document as block-style YAML text.
func (d *Document) Dumps() (string, error) {
	var buf bytes.Buffer
	if err := d.encode(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Dump writes the document as block-style YAML to w. A nil writer means
// standard output. Emitter errors are returned to the caller unmodified.
func (d *Document) Dump(w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	return d.encode(w)
}

func (d *Document) encode(w io.Writer) error {
	node, err := tree.Encode(d.root)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(d.indent)

	if err := enc.Encode(node); err != nil {
		_ = enc.Close()

		return err
	}

	return enc.Close()
}
