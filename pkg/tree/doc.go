// Package tree turns node descriptions into live widgets and tears them down
// again.
//
// A description is a Node: a tagged union whose Kind is decided once, by From,
// when a Go value enters the engine. Classification is capability based and
// runs in a fixed precedence (sequence, renderable, mountable, reactive,
// primitive), so a value that satisfies several capabilities always resolves
// the same way.
//
// # Materializing
//
// A Materializer expands a Node into a flat list of dom nodes:
//
//	m := tree.NewMaterializer(doc)
//	nodes := m.Materialize(tree.From([]any{nil, "hi", counter}))
//
// Renderable and reactive descriptions are anchored on empty text markers, and
// every resource a description acquires (a component instance, a mounted
// element, a store subscription) is recorded in the Registry against the
// widget that anchors it. Sweeping a widget releases everything registered on
// it and on its descendants, exactly once.
//
// # Reactive regions
//
// A reactive source is bracketed by a start and an end marker. On every
// emission the region is rebuilt: the new content is materialized, everything
// between the markers is swept and removed, and the new content is inserted
// after the start marker. There is no keyed diffing.
//
// # Sessions
//
// Session bundles a document, a registry, a materializer and the table of
// mount targets. Mounting into a target that already holds a tree tears the
// previous tree down first:
//
//	s := tree.NewSession(doc)
//	mounted := s.Mount(app, doc.GetElementByID("app"))
//	defer mounted.Unmount()
//
// A Session and everything it creates have single-goroutine affinity.
package tree
