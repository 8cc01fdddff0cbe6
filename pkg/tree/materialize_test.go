package tree_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/store"
	"github.com/vango-dev/arbor/pkg/telemetry"
	"github.com/vango-dev/arbor/pkg/tree"
	"github.com/vango-dev/arbor/pkg/vtest"
)

func newMaterializer(opts ...tree.Option) (*tree.Materializer, *dom.Node) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	doc.Body().AppendChild(parent)
	return tree.NewMaterializer(doc, opts...), parent
}

func TestMaterializeEmpty(t *testing.T) {
	m, _ := newMaterializer()

	nodes := m.Materialize(tree.Empty())

	require.Len(t, nodes, 1)
	assert.Equal(t, dom.TextNode, nodes[0].Type())
	assert.Equal(t, "", nodes[0].Text())
}

func TestMaterializeSequenceOrder(t *testing.T) {
	m, _ := newMaterializer()

	nodes := m.MaterializeValue([]any{"a", "b"})

	assert.Equal(t, []string{"a", "b"}, vtest.Texts(nodes))
}

func TestMaterializeNestedSequenceFlattens(t *testing.T) {
	m, _ := newMaterializer()

	nodes := m.MaterializeValue([]any{"a", []any{"b", []any{"c"}}, 4})

	assert.Equal(t, []string{"a", "b", "c", "4"}, vtest.Texts(nodes))
}

func TestMaterializeEmptySequence(t *testing.T) {
	m, _ := newMaterializer()

	assert.Empty(t, m.MaterializeValue([]any{}))
}

func TestMaterializeRenderable(t *testing.T) {
	m, _ := newMaterializer()
	r := vtest.NewRenderable(nil, "x")

	nodes := m.MaterializeValue(r)

	require.Len(t, nodes, 2)
	assert.Equal(t, []string{"", "x"}, vtest.Texts(nodes))
	assert.True(t, m.Registry().Has(nodes[0]), "cleanup anchored on marker")
}

func TestMaterializeRenderableWithoutContent(t *testing.T) {
	m, _ := newMaterializer()
	r := vtest.NewRenderable(nil)

	nodes := m.MaterializeValue(r)

	require.Len(t, nodes, 1)
	m.Registry().Sweep(nodes[0])
	assert.Equal(t, 1, r.Spy.Calls())
}

func TestMaterializeMountable(t *testing.T) {
	m, _ := newMaterializer()
	mt := vtest.NewMountable(nil, "section", "inside")

	nodes := m.MaterializeValue(mt)

	require.Len(t, nodes, 1)
	assert.Same(t, mt.Node, nodes[0])
	assert.True(t, m.Registry().Has(mt.Node))
}

type nilMountable struct{ spy *vtest.Spy }

func (n nilMountable) Mount(*tree.Materializer) tree.Mounted {
	return tree.Mounted{Unmount: n.spy.Func()}
}

func TestMaterializeMountableWithoutWidget(t *testing.T) {
	m, _ := newMaterializer()
	spy := vtest.NewSpy()

	nodes := m.MaterializeValue(nilMountable{spy})

	require.Len(t, nodes, 1)
	m.Registry().Sweep(nodes[0])
	assert.Equal(t, 1, spy.Calls())
}

func TestMaterializeInvalidChild(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	m, _ := newMaterializer(tree.WithLogger(logger))

	nodes := m.MaterializeValue([]any{"before", func() {}, "after"})

	require.Len(t, nodes, 3)
	assert.Equal(t, dom.CommentNode, nodes[1].Type())
	assert.Equal(t, "before", nodes[0].Text())
	assert.Equal(t, "after", nodes[2].Text())
	assert.Contains(t, logs.String(), "code=E101")
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestReactiveRegionRoundTrip(t *testing.T) {
	m, parent := newMaterializer()
	spyA, spyB := vtest.NewSpy(), vtest.NewSpy()
	src := store.NewAtom[any]([]any{
		vtest.NewRenderable(spyA, "a"),
		vtest.NewRenderable(spyB, "b"),
	})

	nodes := m.MaterializeValue(src)
	parent.AppendChild(nodes...)
	start, end := nodes[0], nodes[len(nodes)-1]

	assert.Equal(t, []string{"", "a", "", "b"}, vtest.Texts(vtest.Between(start, end)))

	src.Set([]any{"c"})

	region := vtest.Between(start, end)
	require.Len(t, region, 1)
	assert.Equal(t, "c", region[0].Text())
	assert.Equal(t, 1, spyA.Calls())
	assert.Equal(t, 1, spyB.Calls())

	src.Set([]any{"d", "e"})
	assert.Equal(t, []string{"d", "e"}, vtest.Texts(vtest.Between(start, end)))
	assert.Equal(t, 1, spyA.Calls())
}

func TestReactiveRegionUsesCurrentValue(t *testing.T) {
	m, parent := newMaterializer()
	src := store.NewAtom("one")

	// Registered ahead of the region, this listener moves the value on before
	// the region sees the "two" emission.
	src.Listen(func(v string) {
		if v == "two" {
			src.Set("three")
		}
	})
	parent.AppendChild(m.MaterializeValue(src)...)
	src.Set("two")

	assert.Equal(t, "three", parent.TextContent())
}

// writingRenderable sets a store while it renders.
type writingRenderable struct {
	write    func()
	content  []any
	cleanups int
}

func (r *writingRenderable) Render() []tree.Node {
	r.write()
	return tree.Nodes(r.content)
}

func (r *writingRenderable) Cleanup() { r.cleanups++ }

func TestReactiveRegionEmissionDuringSwap(t *testing.T) {
	m, parent := newMaterializer()
	src := store.NewAtom[any]("start")
	writer := &writingRenderable{content: []any{"r", "one"}}
	writer.write = func() { src.Set([]any{"v", "2"}) }

	nodes := m.MaterializeValue(src)
	parent.AppendChild(nodes...)
	start, end := nodes[0], nodes[len(nodes)-1]

	src.Set(writer)

	assert.Equal(t, []string{"v", "2"}, vtest.Texts(vtest.Between(start, end)))
	assert.Equal(t, 1, writer.cleanups)
	assert.Equal(t, "v2", parent.TextContent())
}

func TestReactiveRegionIgnoresDetachedStart(t *testing.T) {
	m, _ := newMaterializer()
	src := store.NewAtom("one")

	nodes := m.MaterializeValue(src)
	src.Set("two")

	assert.Equal(t, "one", nodes[1].Text())
}

func TestReactiveRegionSweepUnsubscribes(t *testing.T) {
	m, parent := newMaterializer()
	src := store.NewAtom("one")
	nodes := m.MaterializeValue(src)
	parent.AppendChild(nodes...)
	require.Equal(t, 1, src.Listeners())

	for _, n := range nodes {
		m.Registry().Sweep(n)
	}

	assert.Zero(t, src.Listeners())
	src.Set("two")
	assert.Equal(t, "one", parent.TextContent())
}

func TestNestedReactiveRegions(t *testing.T) {
	m, parent := newMaterializer()
	inner := store.NewAtom("x")
	outer := store.NewAtom[any]([]any{"<", inner, ">"})
	parent.AppendChild(m.MaterializeValue(outer)...)

	inner.Set("y")
	assert.Equal(t, "<y>", parent.TextContent())

	outer.Set([]any{"only"})
	assert.Equal(t, "only", parent.TextContent())
	assert.Zero(t, inner.Listeners(), "inner region swept with outer content")
}

func TestMaterializeThenSweepLeavesNoRegistrations(t *testing.T) {
	inner := store.NewAtom("x")
	descriptions := map[string]any{
		"empty":      nil,
		"primitive":  "p",
		"sequence":   []any{"a", []any{"b"}},
		"renderable": vtest.NewRenderable(nil, "r", inner),
		"mountable":  vtest.NewMountable(nil, "div", inner, "m"),
		"reactive":   store.NewAtom[any]([]any{"a", inner}),
		"invalid":    func() {},
	}

	for name, desc := range descriptions {
		t.Run(name, func(t *testing.T) {
			m, parent := newMaterializer(tree.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
			nodes := m.MaterializeValue(desc)
			parent.AppendChild(nodes...)

			for _, n := range nodes {
				m.Registry().Sweep(n)
			}

			assert.Zero(t, m.Registry().Len())
			assert.Zero(t, inner.Listeners())
		})
	}
}

func TestMaterializeRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := telemetry.NewRecorder(telemetry.WithRegistry(reg))
	m, parent := newMaterializer(tree.WithRecorder(rec), tree.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	src := store.NewAtom("a")

	nodes := m.MaterializeValue([]any{"x", src, func() {}})
	parent.AppendChild(nodes...)
	src.Set("b")

	assert.Equal(t, float64(1), gathered(t, reg, "arbor_region_swaps_total"))
	assert.Equal(t, float64(1), gathered(t, reg, "arbor_invalid_children_total"))
	assert.Positive(t, gathered(t, reg, "arbor_nodes_materialized_total"))
}

// gathered sums the counter and gauge samples of the named metric family.
func gathered(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	var sum float64
	for _, mf := range families {
		if !strings.EqualFold(mf.GetName(), name) {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				sum += c.GetValue()
			}
			if g := metric.GetGauge(); g != nil {
				sum += g.GetValue()
			}
		}
	}
	return sum
}
