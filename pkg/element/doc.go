// Package element builds live elements whose properties follow reactive
// sources.
//
// A Builder accumulates a tag's properties, event listeners and children.
// Nothing is created until Mount:
//
//	count := store.NewAtom(0)
//	b := element.New("button").
//	    Prop("type", "button").
//	    Prop("data-count", count).
//	    Event("click", func(*dom.Event) { count.Update(func(n int) int { return n + 1 }) }).
//	    Node("Add")
//
// Builders are Mountable, so they can appear anywhere in a description and
// share the enclosing session's cleanup registry.
//
// # Reconciliation
//
// A mounted element treats its sources as the single source of truth. Input
// and change events, attribute mutations and dispatches all re-apply every
// declared property, so a direct write to a bound property is rolled back
// the next time mutation records are flushed.
package element
