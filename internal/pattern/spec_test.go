package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFailsFast(t *testing.T) {
	t.Parallel()

	_, err := Compile([]Entry{
		{Pattern: "metadata", Keys: []string{"name"}},
		{Pattern: "items[0]", Keys: []string{"id"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestMatch(t *testing.T) {
	t.Parallel()

	spec, err := Compile([]Entry{
		{Pattern: "", Keys: []string{"apiVersion", "kind", "metadata"}},
		{Pattern: "metadata", Keys: []string{"name", "labels"}},
		{Pattern: "spec.containers[*]", Keys: []string{"name", "image"}},
	})
	require.NoError(t, err)
	require.Equal(t, 3, spec.Len())

	t.Run("root", func(t *testing.T) {
		t.Parallel()

		keys, ok := spec.Match(nil)
		require.True(t, ok)
		assert.Equal(t, []string{"apiVersion", "kind", "metadata"}, keys)
	})

	t.Run("literal path", func(t *testing.T) {
		t.Parallel()

		keys, ok := spec.Match([]Segment{Key("metadata")})
		require.True(t, ok)
		assert.Equal(t, []string{"name", "labels"}, keys)
	})

	t.Run("wildcard path", func(t *testing.T) {
		t.Parallel()

		keys, ok := spec.Match([]Segment{Key("spec"), Key("containers"), Elem()})
		require.True(t, ok)
		assert.Equal(t, []string{"name", "image"}, keys)
	})

	t.Run("no rule for unknown path", func(t *testing.T) {
		t.Parallel()

		_, ok := spec.Match([]Segment{Key("status")})
		assert.False(t, ok)
	})

	t.Run("prefix of a rule does not match", func(t *testing.T) {
		t.Parallel()

		_, ok := spec.Match([]Segment{Key("spec"), Key("containers")})
		assert.False(t, ok)
	})
}

// Overlapping rules land on the same node when two spellings of the same
// path are declared. Specificity compares wildcard counts first; with the
// strict matching rule those are always equal for one path, so the rule
// declared first wins.
func TestMatchOverlapFirstDeclaredWins(t *testing.T) {
	t.Parallel()

	spec, err := Compile([]Entry{
		{Pattern: "items[*]", Keys: []string{"name", "id"}},
		{Pattern: "items[]", Keys: []string{"id", "name"}},
	})
	require.NoError(t, err)

	keys, ok := spec.Match([]Segment{Key("items"), Elem()})
	require.True(t, ok)
	assert.Equal(t, []string{"name", "id"}, keys)
}

func TestMatchEmptySpec(t *testing.T) {
	t.Parallel()

	spec, err := Compile(nil)
	require.NoError(t, err)

	_, ok := spec.Match(nil)
	assert.False(t, ok)

	_, ok = spec.Match([]Segment{Key("anything")})
	assert.False(t, ok)
}
