// Package dom provides the live widget tree that arbor materializes into.
//
// The tree is a small, in-memory document model: element, text, comment and
// fragment nodes with parent/child links, a property map per element, event
// listeners and mutation observers. It plays the role the browser DOM plays
// for a client-side renderer, which keeps the engine testable and lets the
// same trees be serialized to HTML on the server.
//
// # Nodes
//
// Nodes are created by a Document and are identified by pointer. Structural
// operations mirror the platform ones the engine needs:
//
//	doc := dom.NewDocument()
//	ul := doc.CreateElement("ul")
//	ul.AppendChild(doc.CreateText("a"), doc.CreateText("b"))
//	ul.FirstChild().After(doc.CreateComment("between"))
//
// # Events
//
// AddEventListener registers a handler and returns its remover. Dispatch runs
// the node's interceptors first, then capture, target and bubble listeners:
//
//	remove := input.AddEventListener("input", onInput, dom.ListenerOptions{Passive: true})
//	input.Dispatch(&dom.Event{Type: "input", Bubbles: true})
//	remove()
//
// # Mutation observers
//
// Property writes and child-list changes queue MutationRecords for matching
// observers. Records are delivered when the document is flushed, which stands
// in for the platform's microtask checkpoint:
//
//	obs := doc.Observe(el, dom.ObserveOptions{Attributes: true}, func(recs []dom.MutationRecord, _ *dom.Observer) {
//	    ...
//	})
//	el.SetProp("value", "y")
//	_ = doc.Flush()
//	obs.Disconnect()
//
// # Thread Safety
//
// A Document and its nodes have single-goroutine affinity. Callers that share a
// document across goroutines must serialize access themselves.
package dom
