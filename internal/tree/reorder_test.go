package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordered-yaml/internal/pattern"
)

func compile(t *testing.T, entries ...pattern.Entry) *pattern.Spec {
	t.Helper()

	spec, err := pattern.Compile(entries)
	require.NoError(t, err)

	return spec
}

func mapping(pairs ...Entry) *Node {
	return Mapping(pairs)
}

func TestReorderScalarAndSequencePassThrough(t *testing.T) {
	t.Parallel()

	spec := compile(t, pattern.Entry{Pattern: "", Keys: []string{"z", "a"}})

	t.Run("scalar root", func(t *testing.T) {
		t.Parallel()

		out := Reorder(Scalar("hello"), spec)
		assert.Equal(t, KindScalar, out.Kind)
		assert.Equal(t, "hello", out.Value)
	})

	t.Run("sequence order is untouched", func(t *testing.T) {
		t.Parallel()

		in := Sequence([]*Node{Scalar(3), Scalar(1), Scalar(2)})
		out := Reorder(in, spec)

		require.Equal(t, KindSequence, out.Kind)
		require.Len(t, out.Items, 3)
		assert.Equal(t, 3, out.Items[0].Value)
		assert.Equal(t, 1, out.Items[1].Value)
		assert.Equal(t, 2, out.Items[2].Value)
	})
}

func TestReorderEmptySpecKeepsOriginalOrder(t *testing.T) {
	t.Parallel()

	spec := compile(t)

	in := mapping(
		Entry{Key: "z", Value: Scalar(1)},
		Entry{Key: "a", Value: mapping(
			Entry{Key: "y", Value: Scalar(2)},
			Entry{Key: "x", Value: Scalar(3)},
		)},
		Entry{Key: "m", Value: Scalar(4)},
	)

	out := Reorder(in, spec)

	assert.Equal(t, []string{"z", "a", "m"}, out.Keys())

	inner, ok := out.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "x"}, inner.Keys())

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("tree changed under empty spec (-in +out):\n%s", diff)
	}
}

func TestReorderAppliesMatchedOrder(t *testing.T) {
	t.Parallel()

	spec := compile(t, pattern.Entry{Pattern: "", Keys: []string{"kind", "apiVersion", "metadata"}})

	in := mapping(
		Entry{Key: "metadata", Value: Scalar("m")},
		Entry{Key: "apiVersion", Value: Scalar("v1")},
		Entry{Key: "extra", Value: Scalar(true)},
		Entry{Key: "kind", Value: Scalar("Pod")},
	)

	out := Reorder(in, spec)

	// Listed keys first in list order, then the rest in original relative order.
	assert.Equal(t, []string{"kind", "apiVersion", "metadata", "extra"}, out.Keys())
	// Input stays untouched.
	assert.Equal(t, []string{"metadata", "apiVersion", "extra", "kind"}, in.Keys())
}

func TestReorderSkipsAbsentKeysAndDropsNothing(t *testing.T) {
	t.Parallel()

	spec := compile(t, pattern.Entry{Pattern: "", Keys: []string{"z", "q", "m", "a"}})

	in := mapping(
		Entry{Key: "a", Value: Scalar(1)},
		Entry{Key: "m", Value: Scalar(2)},
		Entry{Key: "z", Value: Scalar(3)},
	)

	out := Reorder(in, spec)

	// "q" is listed but absent: silently skipped, nothing shifts around it.
	assert.Equal(t, []string{"z", "m", "a"}, out.Keys())
	assert.ElementsMatch(t, in.Keys(), out.Keys())
}

func TestReorderWildcardAppliesPerElement(t *testing.T) {
	t.Parallel()

	spec := compile(t, pattern.Entry{Pattern: "items[*]", Keys: []string{"name", "id", "tag"}})

	in := mapping(
		Entry{Key: "items", Value: Sequence([]*Node{
			mapping(
				Entry{Key: "id", Value: Scalar(1)},
				Entry{Key: "tag", Value: Scalar("x")},
				Entry{Key: "name", Value: Scalar("first")},
			),
			// Second element lacks "id": its present keys still follow the
			// ordering, nothing shifts in.
			mapping(
				Entry{Key: "tag", Value: Scalar("y")},
				Entry{Key: "name", Value: Scalar("second")},
			),
			mapping(
				Entry{Key: "name", Value: Scalar("third")},
				Entry{Key: "id", Value: Scalar(3)},
				Entry{Key: "tag", Value: Scalar("z")},
			),
		})},
	)

	out := Reorder(in, spec)

	items, ok := out.Get("items")
	require.True(t, ok)
	require.Len(t, items.Items, 3)

	assert.Equal(t, []string{"name", "id", "tag"}, items.Items[0].Keys())
	assert.Equal(t, []string{"name", "tag"}, items.Items[1].Keys())
	assert.Equal(t, []string{"name", "id", "tag"}, items.Items[2].Keys())
}

func TestReorderRootRuleLeavesNestedMappingsAlone(t *testing.T) {
	t.Parallel()

	spec := compile(t, pattern.Entry{Pattern: "", Keys: []string{"b", "a"}})

	in := mapping(
		Entry{Key: "a", Value: mapping(
			Entry{Key: "z", Value: Scalar(1)},
			Entry{Key: "y", Value: Scalar(2)},
		)},
		Entry{Key: "b", Value: Scalar(3)},
	)

	out := Reorder(in, spec)

	assert.Equal(t, []string{"b", "a"}, out.Keys())

	inner, ok := out.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"z", "y"}, inner.Keys())
}

// A rule may address a path that holds a scalar or sequence in this
// particular document. There is simply no mapping to reorder there.
func TestReorderTypeMismatchPassesThrough(t *testing.T) {
	t.Parallel()

	spec := compile(t, pattern.Entry{Pattern: "config", Keys: []string{"b", "a"}})

	in := mapping(Entry{Key: "config", Value: Scalar("plain string")})

	out := Reorder(in, spec)

	child, ok := out.Get("config")
	require.True(t, ok)
	assert.Equal(t, KindScalar, child.Kind)
	assert.Equal(t, "plain string", child.Value)
}

func TestReorderDeterministic(t *testing.T) {
	t.Parallel()

	spec := compile(t,
		pattern.Entry{Pattern: "", Keys: []string{"b"}},
		pattern.Entry{Pattern: "list[]", Keys: []string{"k2", "k1"}},
	)

	in := mapping(
		Entry{Key: "a", Value: Scalar(1)},
		Entry{Key: "b", Value: Scalar(2)},
		Entry{Key: "list", Value: Sequence([]*Node{
			mapping(
				Entry{Key: "k1", Value: Scalar("v1")},
				Entry{Key: "k2", Value: Scalar("v2")},
			),
		})},
	)

	first := Reorder(in, spec)

	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, Reorder(in, spec)); diff != "" {
			t.Fatalf("reorder is not deterministic:\n%s", diff)
		}
	}
}
