package tree

import (
	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/telemetry"
)

// Registry maps live widgets to the teardown that releases what they anchor.
//
// Each widget owns at most one entry. Registering a second teardown for the
// same widget replaces the first; callers must not do that.
type Registry struct {
	entries  map[*dom.Node]func()
	recorder *telemetry.Recorder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[*dom.Node]func())}
}

// Register stores teardown under widget.
func (r *Registry) Register(widget *dom.Node, teardown func()) {
	if widget == nil || teardown == nil {
		return
	}
	r.entries[widget] = teardown
}

// Has reports whether widget has a pending teardown.
func (r *Registry) Has(widget *dom.Node) bool {
	_, ok := r.entries[widget]
	return ok
}

// Len returns the number of pending teardowns.
func (r *Registry) Len() int { return len(r.entries) }

// Sweep runs and removes the teardown registered for widget, then sweeps
// every child of widget, depth first. Widgets without an entry are still
// descended into.
func (r *Registry) Sweep(widget *dom.Node) {
	if widget == nil {
		return
	}
	r.recorder.Sweep()
	r.sweep(widget)
}

func (r *Registry) sweep(widget *dom.Node) {
	if teardown, ok := r.entries[widget]; ok {
		// Removed before running so a re-entrant sweep cannot run it twice.
		delete(r.entries, widget)
		r.recorder.Teardown()
		teardown()
	}
	for _, child := range widget.Children() {
		r.sweep(child)
	}
}
