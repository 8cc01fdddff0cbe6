package arbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/arbor"
	"github.com/vango-dev/arbor/pkg/component"
	"github.com/vango-dev/arbor/pkg/dom"
)

func newTarget(t *testing.T) (*dom.Document, *dom.Node) {
	t.Helper()
	doc := dom.NewDocument()
	t.Cleanup(func() { arbor.Release(doc) })
	target := doc.CreateElement("div")
	doc.Body().AppendChild(target)
	return doc, target
}

func TestMountAndUnmount(t *testing.T) {
	doc, target := newTarget(t)
	count := arbor.NewAtom(0)

	root := arbor.Mount([]any{
		arbor.Element("h1").Node("Counter"),
		arbor.Element("p").Nodes([]any{"Count: ", count}),
	}, target)

	assert.Equal(t, "CounterCount: 0", target.TextContent())
	count.Set(2)
	assert.Equal(t, "CounterCount: 2", target.TextContent())

	s := arbor.SessionFor(doc)
	got, ok := s.Lookup(target)
	require.True(t, ok)
	assert.Same(t, root, got)

	arbor.Unmount(target)
	assert.False(t, root.Active())
	assert.Empty(t, target.Children())
	assert.Equal(t, 0, count.Listeners())
}

func TestSessionForIsStable(t *testing.T) {
	doc, _ := newTarget(t)
	assert.Same(t, arbor.SessionFor(doc), arbor.SessionFor(doc))

	other := dom.NewDocument()
	defer arbor.Release(other)
	assert.NotSame(t, arbor.SessionFor(doc), arbor.SessionFor(other))
}

func TestMountDetached(t *testing.T) {
	label := arbor.NewAtom("a")
	root := arbor.Mount(label, nil)
	defer root.Unmount()

	require.Nil(t, root.Target)
	require.NotNil(t, root.Container)
	assert.Equal(t, "a", root.Container.TextContent())

	label.Set("b")
	assert.Equal(t, "b", root.Container.TextContent())
}

func TestUnmountWithoutMount(t *testing.T) {
	_, target := newTarget(t)
	assert.NotPanics(t, func() {
		arbor.Unmount(target)
		arbor.Unmount(nil)
	})
}

func TestComponent(t *testing.T) {
	_, target := newTarget(t)

	type props struct{ Name string }
	greet := arbor.Component(func(s *component.Scope[props]) any {
		return arbor.Element("span").Node("Hello, " + s.Props.Name)
	})

	arbor.Mount(greet.Props(props{Name: "arbor"}), target)
	assert.Equal(t, "Hello, arbor", target.TextContent())
}

func TestComputed(t *testing.T) {
	_, target := newTarget(t)
	n := arbor.NewAtom(2)
	double := arbor.NewComputed(func() int { return n.Get() * 2 }, n)

	root := arbor.Mount(double, target)
	defer root.Unmount()

	assert.Equal(t, "4", target.TextContent())
	n.Set(5)
	assert.Equal(t, "10", target.TextContent())
}

func TestNewSession(t *testing.T) {
	doc := dom.NewDocument()
	s := arbor.NewSession(doc, arbor.WithID("custom"))
	assert.Equal(t, "custom", s.ID())
	assert.NotSame(t, s, arbor.SessionFor(doc))
	arbor.Release(doc)
}
