// Package component turns render functions into reusable components.
//
//	Counter := component.New(func(s *component.Scope[CounterProps]) any {
//	    s.Effect(func() func() { return s.Props.Count.Listen(log) })
//	    return el.Button().
//	        Event("click", func(*dom.Event) { s.Emit(component.Event{Type: "bump"}) }).
//	        Node(s.Props.Count)
//	})
//
//	root := session.Mount(Counter.Instance(CounterProps{Count: n}, component.Handlers{
//	    "bump": func(component.Event) { n.Update(inc) },
//	}), target)
package component

import (
	"github.com/vango-dev/arbor/pkg/tree"
)

// Event is emitted by a component to its caller.
type Event struct {
	Type   string
	Detail any
}

// Handler receives emitted events.
type Handler func(Event)

// Handlers maps event types to handlers.
type Handlers map[string]Handler

// RenderFunc produces a component's content. The result is classified like
// any other description.
type RenderFunc[P any] func(s *Scope[P]) any

// Scope is what a render function sees.
type Scope[P any] struct {
	// Props are the instance properties.
	Props P

	// Children are the instance children.
	Children []tree.Node

	handlers Handlers
	instance *instanceState
}

// Emit calls the handler registered for e.Type, if any.
func (s *Scope[P]) Emit(e Event) {
	if h := s.handlers[e.Type]; h != nil {
		h(e)
	}
}

// Effect runs fn now. The teardown it returns, if any, runs when the
// instance is cleaned up.
func (s *Scope[P]) Effect(fn func() func()) {
	if fn == nil {
		return
	}
	if teardown := fn(); teardown != nil {
		s.instance.cleanups = append(s.instance.cleanups, teardown)
	}
}

// Factory creates instances of one component.
type Factory[P any] struct {
	render RenderFunc[P]
}

// New returns a factory for render.
func New[P any](render RenderFunc[P]) *Factory[P] {
	return &Factory[P]{render: render}
}

// Instance returns an instance with the given props, handlers and children.
func (f *Factory[P]) Instance(props P, handlers Handlers, children ...any) *Instance[P] {
	inst := f.blank()
	inst.props = props
	inst.Events(handlers)
	inst.Nodes(children)
	return inst
}

// Props starts a chained instance with props.
func (f *Factory[P]) Props(props P) *Instance[P] {
	return f.blank().Props(props)
}

// Events starts a chained instance with handlers.
func (f *Factory[P]) Events(handlers Handlers) *Instance[P] {
	return f.blank().Events(handlers)
}

// Event starts a chained instance with one handler.
func (f *Factory[P]) Event(typ string, h Handler) *Instance[P] {
	return f.blank().Event(typ, h)
}

// Nodes starts a chained instance with children.
func (f *Factory[P]) Nodes(children []any) *Instance[P] {
	return f.blank().Nodes(children)
}

// Node starts a chained instance with one child.
func (f *Factory[P]) Node(child any) *Instance[P] {
	return f.blank().Node(child)
}

func (f *Factory[P]) blank() *Instance[P] {
	return &Instance[P]{
		render:   f.render,
		handlers: make(Handlers),
		state:    &instanceState{},
	}
}

type instanceState struct {
	cleanups []func()
}

// Instance is a configured component. It implements tree.Renderable.
//
// Configuration methods affect later renders only; widgets already mounted
// from this instance are left alone.
type Instance[P any] struct {
	render   RenderFunc[P]
	props    P
	handlers Handlers
	children []tree.Node
	state    *instanceState
}

// Render calls the render function and returns its result as a list.
func (i *Instance[P]) Render() []tree.Node {
	s := &Scope[P]{
		Props:    i.props,
		Children: append([]tree.Node(nil), i.children...),
		handlers: i.handlers,
		instance: i.state,
	}
	return tree.Nodes(i.render(s))
}

// Cleanup runs every effect teardown registered so far, in registration
// order, and forgets them.
func (i *Instance[P]) Cleanup() {
	cleanups := i.state.cleanups
	i.state.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
}

// Props replaces the props.
func (i *Instance[P]) Props(props P) *Instance[P] {
	i.props = props
	return i
}

// Events replaces every handler.
func (i *Instance[P]) Events(handlers Handlers) *Instance[P] {
	i.handlers = make(Handlers, len(handlers))
	for typ, h := range handlers {
		i.handlers[typ] = h
	}
	return i
}

// Event sets the handler for typ.
func (i *Instance[P]) Event(typ string, h Handler) *Instance[P] {
	i.handlers[typ] = h
	return i
}

// Nodes adds children. The default strategy appends.
func (i *Instance[P]) Nodes(children []any, strategy ...tree.Strategy) *Instance[P] {
	add := make([]tree.Node, 0, len(children))
	for _, c := range children {
		add = append(add, tree.From(c))
	}
	i.children = tree.ApplyStrategy(i.children, add, tree.ResolveStrategy(strategy))
	return i
}

// Node adds one child. The default strategy appends.
func (i *Instance[P]) Node(child any, strategy ...tree.Strategy) *Instance[P] {
	return i.Nodes([]any{child}, strategy...)
}

// Pending returns the number of effect teardowns waiting for Cleanup.
func (i *Instance[P]) Pending() int { return len(i.state.cleanups) }
