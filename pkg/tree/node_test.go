package tree_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/arbor/pkg/store"
	"github.com/vango-dev/arbor/pkg/tree"
	"github.com/vango-dev/arbor/pkg/vtest"
)

type label string

func (l label) String() string { return "label:" + string(l) }

// renderSource is both a Renderable and a Source; Renderable wins.
type renderSource struct {
	*store.Atom[string]
}

func (renderSource) Render() []tree.Node { return nil }
func (renderSource) Cleanup()            {}

func TestFromClassification(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	var nilFunc func()

	tests := []struct {
		name string
		in   any
		kind tree.Kind
		text string
	}{
		{"nil", nil, tree.KindEmpty, ""},
		{"nil pointer", nilPtr, tree.KindEmpty, ""},
		{"nil map", nilMap, tree.KindEmpty, ""},
		{"nil func", nilFunc, tree.KindEmpty, ""},
		{"string", "hi", tree.KindPrimitive, "hi"},
		{"empty string", "", tree.KindPrimitive, ""},
		{"int", 42, tree.KindPrimitive, "42"},
		{"float", 1.5, tree.KindPrimitive, "1.5"},
		{"whole float", 3.0, tree.KindPrimitive, "3"},
		{"bool", true, tree.KindPrimitive, "true"},
		{"bytes", []byte("raw"), tree.KindPrimitive, "raw"},
		{"stringer", label("x"), tree.KindPrimitive, "label:x"},
		{"error", errors.New("boom"), tree.KindPrimitive, "boom"},
		{"struct", struct{ A int }{1}, tree.KindPrimitive, "{1}"},
		{"any slice", []any{"a", 1}, tree.KindSequence, ""},
		{"string slice", []string{"a", "b"}, tree.KindSequence, ""},
		{"array", [2]int{1, 2}, tree.KindSequence, ""},
		{"renderable", vtest.NewRenderable(nil), tree.KindRenderable, ""},
		{"mountable", vtest.NewMountable(nil, "div"), tree.KindMountable, ""},
		{"reactive", store.NewAtom(1), tree.KindReactive, ""},
		{"func", func() string { return "x" }, tree.KindInvalid, ""},
		{"renderable beats source", renderSource{store.NewAtom("s")}, tree.KindRenderable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tree.From(tt.in)
			assert.Equal(t, tt.kind, n.Kind, "kind %s", n.Kind)
			if tt.kind == tree.KindPrimitive {
				assert.Equal(t, tt.text, n.Text)
			}
		})
	}
}

func TestFromSequenceItems(t *testing.T) {
	n := tree.From([]any{"a", nil, []int{1, 2}})

	require.Equal(t, tree.KindSequence, n.Kind)
	require.Len(t, n.Items, 3)
	assert.Equal(t, tree.KindPrimitive, n.Items[0].Kind)
	assert.Equal(t, tree.KindEmpty, n.Items[1].Kind)
	assert.Equal(t, tree.KindSequence, n.Items[2].Kind)
	assert.Len(t, n.Items[2].Items, 2)
}

func TestFromNodePassthrough(t *testing.T) {
	n := tree.Text("x")

	assert.Equal(t, n, tree.From(n))
	assert.Equal(t, n, tree.From(&n))
	assert.Equal(t, tree.KindEmpty, tree.From((*tree.Node)(nil)).Kind)
}

func TestNodes(t *testing.T) {
	assert.Len(t, tree.Nodes([]any{"a", "b"}), 2)
	assert.Len(t, tree.Nodes("a"), 1)
	assert.Len(t, tree.Nodes(nil), 1)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "", tree.Stringify(nil))
	assert.Equal(t, "NaN", tree.Stringify(math.NaN()))
	assert.Equal(t, "Infinity", tree.Stringify(math.Inf(1)))
	assert.Equal(t, "-Infinity", tree.Stringify(math.Inf(-1)))
	assert.Equal(t, "0.25", tree.Stringify(float32(0.25)))
	assert.Equal(t, "-7", tree.Stringify(int64(-7)))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "reactive", tree.KindReactive.String())
	assert.Equal(t, "unknown", tree.Kind(99).String())
}
