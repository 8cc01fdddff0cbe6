package el

import (
	"fmt"
	"sort"

	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/element"
	"github.com/vango-dev/arbor/pkg/store"
	"github.com/vango-dev/arbor/pkg/tree"
)

// build creates a builder for tag and applies args.
// Arguments can be: nil, Attr, []Attr, On, []On, or any child description.
func build(tag string, args []any) *element.Builder {
	b := element.New(tag)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments)
			continue
		case Attr:
			applyAttr(b, v)
		case []Attr:
			for _, a := range v {
				applyAttr(b, a)
			}
		case On:
			b.Event(v.Type, v.Handler, v.Options)
		case []On:
			for _, o := range v {
				b.Event(o.Type, o.Handler, o.Options)
			}
		default:
			b.Node(v)
		}
	}
	return b
}

// applyAttr sets a on b. Successive static class values accumulate.
func applyAttr(b *element.Builder, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == dom.ClassKey {
		if prev, ok := b.PropValue(dom.ClassKey); ok && isStaticClass(prev) && isStaticClass(a.Value) {
			b.Prop(dom.ClassKey, []any{prev, a.Value})
			return
		}
	}
	b.Prop(a.Key, a.Value)
}

func isStaticClass(v any) bool {
	_, reactive := v.(store.Source)
	return !reactive
}

// Attrs groups the properties and listeners passed to Tree.
type Attrs struct {
	Props  map[string]any
	Events map[string]element.Listener
}

// Tree builds an element from a tag name, or calls a function component.
// It is the target of generated element factories:
//
//	Tree("ul", Attrs{Props: map[string]any{"class": "list"}}, items...)
//	Tree(Card, Attrs{Props: map[string]any{"title": "x"}})
func Tree(comp any, attrs Attrs, children ...any) any {
	switch c := comp.(type) {
	case string:
		return element.New(c).
			Props(attrs.Props).
			Events(attrs.Events).
			Nodes(children)
	case func(Attrs, []any) any:
		return c(attrs, children)
	default:
		// Reported as an invalid child when materialized.
		return tree.Node{Kind: tree.KindInvalid, Invalid: comp}
	}
}

// Fragment groups children without a wrapping element.
func Fragment(children ...any) any {
	return children
}

// Text returns a text description.
func Text(content string) tree.Node {
	return tree.Text(content)
}

// Textf returns a formatted text description.
func Textf(format string, args ...any) tree.Node {
	return tree.Text(fmt.Sprintf(format, args...))
}

// Nothing returns the empty description.
func Nothing() tree.Node {
	return tree.Empty()
}

// If returns node when condition is true, and nothing otherwise.
func If(condition bool, node any) any {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue or ifFalse depending on condition.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When calls fn only when condition is true.
func When(condition bool, fn func() any) any {
	if condition && fn != nil {
		return fn()
	}
	return nil
}

// Unless returns node when condition is false.
func Unless(condition bool, node any) any {
	return If(!condition, node)
}

// Range maps items to descriptions.
func Range[T any](items []T, fn func(item T, index int) any) []any {
	out := make([]any, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// RangeMap maps a map to descriptions in sorted key order.
func RangeMap[K interface{ ~string | ~int | ~int64 }, V any](m map[K]V, fn func(key K, value V) any) []any {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]any, 0, len(m))
	for _, k := range keys {
		out = append(out, fn(k, m[k]))
	}
	return out
}

// Repeat calls fn n times.
func Repeat(n int, fn func(i int) any) []any {
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}

// Show returns a reactive description that renders node while cond holds.
func Show(cond store.Source, node any) any {
	return store.NewComputed(func() any {
		if truthy(cond.Current()) {
			return node
		}
		return nil
	}, cond)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	}
	return true
}
