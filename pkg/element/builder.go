package element

import (
	"sort"

	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/tree"
)

// PropsStrategy controls how Props combines with properties already set.
type PropsStrategy uint8

const (
	Merge   PropsStrategy = iota // later keys overwrite, others are kept
	Replace                      // the new map becomes the whole property set
)

// Listener is an event handler with its listener options.
type Listener struct {
	Handler dom.Handler
	Options dom.ListenerOptions
}

// Builder accumulates an element description.
//
// Builder methods mutate the receiver and return it. Changes made after
// Mount only affect later mounts.
type Builder struct {
	tag      string
	keys     []string
	props    map[string]any
	events   map[string]Listener
	children []tree.Node
}

// New returns a builder for tag.
func New(tag string) *Builder {
	return &Builder{
		tag:    tag,
		props:  make(map[string]any),
		events: make(map[string]Listener),
	}
}

// Tag returns the tag name.
func (b *Builder) Tag() string { return b.tag }

// Prop sets one property. The value may be a store.Source, in which case the
// property follows it.
func (b *Builder) Prop(key string, value any) *Builder {
	if _, ok := b.props[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.props[key] = value
	return b
}

// Props sets several properties. New keys are added in sorted order.
func (b *Builder) Props(props map[string]any, strategy ...PropsStrategy) *Builder {
	if len(strategy) > 0 && strategy[0] == Replace {
		b.keys = nil
		b.props = make(map[string]any, len(props))
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.Prop(k, props[k])
	}
	return b
}

// Event sets the listener for typ, replacing any previous one.
func (b *Builder) Event(typ string, handler dom.Handler, opts ...dom.ListenerOptions) *Builder {
	l := Listener{Handler: handler}
	if len(opts) > 0 {
		l.Options = opts[0]
	}
	b.events[typ] = l
	return b
}

// Events replaces every declared listener.
func (b *Builder) Events(events map[string]Listener) *Builder {
	b.events = make(map[string]Listener, len(events))
	for typ, l := range events {
		b.events[typ] = l
	}
	return b
}

// Nodes adds children. The default strategy appends.
func (b *Builder) Nodes(children []any, strategy ...tree.Strategy) *Builder {
	add := make([]tree.Node, 0, len(children))
	for _, c := range children {
		add = append(add, tree.From(c))
	}
	b.children = tree.ApplyStrategy(b.children, add, tree.ResolveStrategy(strategy))
	return b
}

// Node adds one child. The default strategy appends.
func (b *Builder) Node(child any, strategy ...tree.Strategy) *Builder {
	return b.Nodes([]any{child}, strategy...)
}

// PropValue returns the declared value for key.
func (b *Builder) PropValue(key string) (any, bool) {
	v, ok := b.props[key]
	return v, ok
}

// PropKeys returns the declared property keys in first-set order.
func (b *Builder) PropKeys() []string {
	return append([]string(nil), b.keys...)
}

// Children returns the declared children.
func (b *Builder) Children() []tree.Node {
	return append([]tree.Node(nil), b.children...)
}

// EventTypes returns the declared event types, sorted.
func (b *Builder) EventTypes() []string {
	types := make([]string, 0, len(b.events))
	for typ := range b.events {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}
