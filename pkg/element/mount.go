package element

import (
	"reflect"

	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/store"
	"github.com/vango-dev/arbor/pkg/tree"
)

// guardEvents are the user-driven events that trigger reconciliation.
var guardEvents = []string{"change", "input"}

// binding is a declared property captured at mount time.
type binding struct {
	key    string
	value  any
	source store.Source
}

// controller is the live state of one mounted element.
type controller struct {
	node     *dom.Node
	bindings []binding
	m        *tree.Materializer
	undo     []func()
	observer *dom.Observer
	done     bool
}

// Mount creates the element, binds its properties and listeners, installs the
// reconciliation guard and materializes its children with m.
func (b *Builder) Mount(m *tree.Materializer) tree.Mounted {
	c := &controller{
		node: m.Document().CreateElement(b.tag),
		m:    m,
	}
	for _, key := range b.keys {
		value := b.props[key]
		bd := binding{key: key, value: value}
		if src, ok := value.(store.Source); ok {
			bd.source = src
		}
		c.bindings = append(c.bindings, bd)
	}

	for _, bd := range c.bindings {
		if bd.source == nil {
			c.apply(bd.key, bd.value)
			continue
		}
		key := bd.key
		c.undo = append(c.undo, bd.source.SubscribeAny(func(v any) {
			c.apply(key, v)
		}))
	}

	for _, typ := range b.EventTypes() {
		l := b.events[typ]
		c.undo = append(c.undo, c.node.AddEventListener(typ, l.Handler, l.Options))
	}

	guard := func(*dom.Event) { c.control() }
	for _, typ := range guardEvents {
		c.undo = append(c.undo, c.node.AddEventListener(typ, guard, dom.ListenerOptions{Passive: true}))
	}
	c.observer = m.Document().Observe(c.node, dom.ObserveOptions{Attributes: true},
		func([]dom.MutationRecord, *dom.Observer) { c.control() })
	c.undo = append(c.undo, c.node.Intercept(guard))

	if len(b.children) > 0 {
		c.node.AppendChild(m.Materialize(tree.Node{Kind: tree.KindSequence, Items: b.children})...)
	}

	return tree.Mounted{Node: c.node, Unmount: c.unmount}
}

// MountIn mounts the element with a standalone materializer for doc.
func (b *Builder) MountIn(doc *dom.Document, opts ...tree.Option) tree.Mounted {
	return b.Mount(tree.NewMaterializer(doc, opts...))
}

// control re-applies every declared property. Each source is read on its
// own, so two properties bound to the same source are reconciled separately.
func (c *controller) control() {
	if c.done {
		return
	}
	changed := false
	for _, bd := range c.bindings {
		value := bd.value
		if bd.source != nil {
			value = bd.source.Current()
		}
		if c.apply(bd.key, value) {
			changed = true
		}
	}
	if changed {
		c.m.Recorder().Reconciled()
		c.m.Logger().Debug("element reconciled", "tag", c.node.Tag())
	}
}

// apply writes value to key unless the element already holds it, and
// reports whether it wrote.
func (c *controller) apply(key string, value any) bool {
	if key == dom.ClassKey && dom.IsClassList(value) {
		value = dom.ClassNames(value)
	}
	current, ok := c.node.Prop(key)
	if value == nil {
		if !ok {
			return false
		}
		c.node.RemoveProp(key)
		return true
	}
	if ok && sameValue(current, value) {
		return false
	}
	c.node.SetProp(key, value)
	return true
}

func (c *controller) unmount() {
	if c.done {
		return
	}
	c.done = true
	for _, child := range c.node.Children() {
		c.m.Registry().Sweep(child)
	}
	c.observer.Disconnect()
	for _, undo := range c.undo {
		undo()
	}
	c.undo = nil
}

func sameValue(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil {
		return ta == tb
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	// A comparable type can still hold an uncomparable dynamic value, such
	// as a struct with an interface field carrying a slice.
	if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
