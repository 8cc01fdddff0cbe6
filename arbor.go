// Package arbor materializes declarative trees into live document nodes.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/arbor"
//
// Usage:
//
//	count := arbor.NewAtom(0)
//	root := arbor.Mount([]any{
//	    arbor.Element("h1").Node("Counter"),
//	    arbor.Element("p").Nodes([]any{"Count: ", count}),
//	}, target)
//	count.Set(1)
//	root.Unmount()
//
// Mount and Unmount use one default session per document. Applications that
// need their own logger, metrics or tracer create a session with NewSession.
package arbor

import (
	"sync"

	"github.com/vango-dev/arbor/pkg/component"
	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/element"
	"github.com/vango-dev/arbor/pkg/store"
	"github.com/vango-dev/arbor/pkg/tree"
)

// =============================================================================
// Tree types (re-export from pkg/tree)
// =============================================================================

// Node is a classified description.
type Node = tree.Node

// Session owns the cleanup registry and mount points of one document.
type Session = tree.Session

// Root is a mounted tree.
type Root = tree.Root

// Option configures a session.
type Option = tree.Option

// Strategy controls how chained children combine.
type Strategy = tree.Strategy

// Child strategies.
const (
	Append  = tree.Append
	Prepend = tree.Prepend
	Replace = tree.Replace
)

// Session options.
var (
	WithLogger   = tree.WithLogger
	WithRecorder = tree.WithRecorder
	WithTracer   = tree.WithTracer
	WithContext  = tree.WithContext
	WithID       = tree.WithID
)

// NewSession creates a session bound to doc.
func NewSession(doc *dom.Document, opts ...Option) *Session {
	return tree.NewSession(doc, opts...)
}

// =============================================================================
// Mounting with default sessions
// =============================================================================

var defaults = struct {
	sync.Mutex
	sessions map[*dom.Document]*tree.Session
	detached *dom.Document
}{sessions: make(map[*dom.Document]*tree.Session)}

// SessionFor returns the default session of doc, creating it on first use.
func SessionFor(doc *dom.Document) *Session {
	defaults.Lock()
	defer defaults.Unlock()
	s, ok := defaults.sessions[doc]
	if !ok {
		s = tree.NewSession(doc)
		defaults.sessions[doc] = s
	}
	return s
}

// Release forgets the default session of doc. Trees it mounted stay live
// until their Root is unmounted.
func Release(doc *dom.Document) {
	defaults.Lock()
	defer defaults.Unlock()
	delete(defaults.sessions, doc)
}

// Mount materializes desc into target with the default session of the
// target's document. With a nil target the tree is mounted detached, in a
// document of its own.
func Mount(desc any, target *dom.Node) *Root {
	if target == nil {
		return SessionFor(detachedDocument()).Mount(desc, nil)
	}
	return SessionFor(target.Document()).Mount(desc, target)
}

// Unmount tears down whatever the default session mounted at target.
func Unmount(target *dom.Node) {
	if target == nil {
		return
	}
	defaults.Lock()
	s, ok := defaults.sessions[target.Document()]
	defaults.Unlock()
	if ok {
		s.Unmount(target)
	}
}

func detachedDocument() *dom.Document {
	defaults.Lock()
	defer defaults.Unlock()
	if defaults.detached == nil {
		defaults.detached = dom.NewDocument()
	}
	return defaults.detached
}

// =============================================================================
// Builders
// =============================================================================

// Element starts an element builder for tag.
func Element(tag string) *element.Builder {
	return element.New(tag)
}

// Component creates a component factory from render.
func Component[P any](render component.RenderFunc[P]) *component.Factory[P] {
	return component.New(render)
}

// =============================================================================
// Reactive sources (re-export from pkg/store)
// =============================================================================

// Source is the reactive capability the engine binds to.
type Source = store.Source

// NewAtom creates a writable reactive value.
func NewAtom[T any](initial T) *store.Atom[T] {
	return store.NewAtom(initial)
}

// NewComputed creates a value derived from deps.
func NewComputed[T any](compute func() T, deps ...Source) *store.Computed[T] {
	return store.NewComputed(compute, deps...)
}
