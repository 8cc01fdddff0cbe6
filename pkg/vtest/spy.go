package vtest

import (
	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/tree"
)

// Spy counts invocations of a teardown.
type Spy struct {
	calls int
}

// NewSpy returns a spy with no recorded calls.
func NewSpy() *Spy { return &Spy{} }

// Func returns a teardown that records a call on each invocation.
func (s *Spy) Func() func() {
	return func() { s.calls++ }
}

// Calls returns the number of recorded calls.
func (s *Spy) Calls() int { return s.calls }

// Reset clears the recorded calls.
func (s *Spy) Reset() { s.calls = 0 }

// Renderable is a tree.Renderable with fixed content whose cleanup is
// recorded by a spy.
type Renderable struct {
	Content []any
	Spy     *Spy
	renders int
}

// NewRenderable returns a renderable producing content. A nil spy gets a
// fresh one.
func NewRenderable(spy *Spy, content ...any) *Renderable {
	if spy == nil {
		spy = NewSpy()
	}
	return &Renderable{Content: content, Spy: spy}
}

// Render implements tree.Renderable.
func (r *Renderable) Render() []tree.Node {
	r.renders++
	return tree.Nodes(r.Content)
}

// Cleanup implements tree.Renderable.
func (r *Renderable) Cleanup() { r.Spy.calls++ }

// Renders returns how many times Render was called.
func (r *Renderable) Renders() int { return r.renders }

// Mountable is a tree.Mountable producing a single element whose unmount is
// recorded by a spy.
type Mountable struct {
	Tag      string
	Children []any
	Spy      *Spy

	// Node is the widget created by the last Mount.
	Node *dom.Node
}

// NewMountable returns a mountable creating a tag element holding children.
func NewMountable(spy *Spy, tag string, children ...any) *Mountable {
	if spy == nil {
		spy = NewSpy()
	}
	return &Mountable{Tag: tag, Children: children, Spy: spy}
}

// Mount implements tree.Mountable.
func (m *Mountable) Mount(mat *tree.Materializer) tree.Mounted {
	m.Node = mat.Document().CreateElement(m.Tag)
	m.Node.AppendChild(mat.MaterializeValue(m.Children)...)
	return tree.Mounted{
		Node: m.Node,
		Unmount: func() {
			m.Spy.calls++
			for _, child := range m.Node.Children() {
				mat.Registry().Sweep(child)
			}
		},
	}
}
