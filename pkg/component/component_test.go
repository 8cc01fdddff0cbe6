package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/arbor/pkg/component"
	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/element"
	"github.com/vango-dev/arbor/pkg/store"
	"github.com/vango-dev/arbor/pkg/tree"
	"github.com/vango-dev/arbor/pkg/vtest"
)

type greetProps struct {
	Name string
}

var greet = component.New(func(s *component.Scope[greetProps]) any {
	return []any{"hello ", s.Props.Name, s.Children}
})

func TestInstanceRender(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()

	fx.Mount(greet.Instance(greetProps{Name: "ada"}, nil, "!"))

	assert.Equal(t, "hello ada!", fx.Target.TextContent())
}

func TestInstanceIsRenderable(t *testing.T) {
	n := tree.From(greet.Props(greetProps{}))

	assert.Equal(t, tree.KindRenderable, n.Kind)
}

func TestRenderNilResult(t *testing.T) {
	empty := component.New(func(*component.Scope[struct{}]) any { return nil })

	nodes := empty.Instance(struct{}{}, nil).Render()

	require.Len(t, nodes, 1)
	assert.Equal(t, tree.KindEmpty, nodes[0].Kind)
}

func TestEmit(t *testing.T) {
	var got []component.Event
	button := component.New(func(s *component.Scope[struct{}]) any {
		s.Emit(component.Event{Type: "ready", Detail: 1})
		s.Emit(component.Event{Type: "unhandled"})
		return nil
	})

	button.Instance(struct{}{}, component.Handlers{
		"ready": func(e component.Event) { got = append(got, e) },
	}).Render()

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Detail)
}

func TestEmitFromElementEvent(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	clicks := 0
	button := component.New(func(s *component.Scope[struct{}]) any {
		return element.New("button").Event("click", func(*dom.Event) {
			s.Emit(component.Event{Type: "press"})
		})
	})

	fx.Mount(button.Event("press", func(component.Event) { clicks++ }))
	fx.Target.FirstChild().NextSibling().Dispatch(&dom.Event{Type: "click"})

	assert.Equal(t, 1, clicks)
}

func TestEffectCleanupRunsOnce(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	count := store.NewAtom(0)
	seen := 0
	watcher := component.New(func(s *component.Scope[*store.Atom[int]]) any {
		s.Effect(func() func() {
			return s.Props.Listen(func(int) { seen++ })
		})
		s.Effect(func() func() { return nil })
		return s.Props
	})
	inst := watcher.Props(count)

	root := fx.Mount(inst)
	require.Equal(t, 1, inst.Pending())
	require.Equal(t, 2, count.Listeners())

	count.Set(1)
	assert.Equal(t, 1, seen)
	assert.Equal(t, "1", fx.Target.TextContent())

	root.Unmount()
	inst.Cleanup()

	assert.Zero(t, count.Listeners())
	assert.Zero(t, inst.Pending())
	count.Set(2)
	assert.Equal(t, 1, seen)
}

func TestChainedInstance(t *testing.T) {
	inst := greet.Node("b").
		Node("a", tree.Prepend).
		Nodes([]any{"c"}).
		Props(greetProps{Name: "x"})

	nodes := inst.Render()

	fx := vtest.NewFixture().Build()
	texts := vtest.Texts(fx.Materialize(nodes))
	assert.Equal(t, []string{"hello ", "x", "a", "b", "c"}, texts)
}

func TestChainedEventsReplaceHandlers(t *testing.T) {
	var calls []string
	emitter := component.New(func(s *component.Scope[struct{}]) any {
		s.Emit(component.Event{Type: "a"})
		s.Emit(component.Event{Type: "b"})
		return nil
	})

	emitter.
		Event("a", func(component.Event) { calls = append(calls, "old-a") }).
		Events(component.Handlers{"b": func(component.Event) { calls = append(calls, "b") }}).
		Render()

	assert.Equal(t, []string{"b"}, calls)
}

func TestReconfigureAffectsLaterRenders(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	inst := greet.Props(greetProps{Name: "one"})
	fx.Mount(inst)

	inst.Props(greetProps{Name: "two"})
	assert.Equal(t, "hello one", fx.Target.TextContent())

	fx.Mount(inst)
	assert.Equal(t, "hello two", fx.Target.TextContent())
}
