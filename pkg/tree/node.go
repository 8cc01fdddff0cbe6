package tree

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/store"
)

// Kind is the description discriminator.
type Kind uint8

const (
	KindEmpty      Kind = iota // nil
	KindPrimitive              // string, number, bool, anything else stringified
	KindSequence               // ordered list of descriptions
	KindRenderable             // component instance
	KindMountable              // nested element builder
	KindReactive               // live-updating region
	KindInvalid                // function value where content was expected
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPrimitive:
		return "primitive"
	case KindSequence:
		return "sequence"
	case KindRenderable:
		return "renderable"
	case KindMountable:
		return "mountable"
	case KindReactive:
		return "reactive"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Renderable is a component instance.
type Renderable interface {
	// Render returns the instance's content.
	Render() []Node

	// Cleanup releases everything the instance acquired while rendering.
	Cleanup()
}

// Mountable is a nested element builder.
type Mountable interface {
	// Mount creates the live widget, materializing any children with m.
	Mount(m *Materializer) Mounted
}

// Mounted is the result of mounting a Mountable.
type Mounted struct {
	Node    *dom.Node
	Unmount func()
}

// Node is a classified description.
type Node struct {
	Kind       Kind
	Text       string       // KindPrimitive
	Items      []Node       // KindSequence
	Renderable Renderable   // KindRenderable
	Mountable  Mountable    // KindMountable
	Reactive   store.Source // KindReactive
	Invalid    any          // KindInvalid
}

// Empty returns the empty description.
func Empty() Node { return Node{Kind: KindEmpty} }

// Text returns a primitive description for s.
func Text(s string) Node { return Node{Kind: KindPrimitive, Text: s} }

// Seq classifies every value and returns them as a sequence.
func Seq(values ...any) Node {
	items := make([]Node, 0, len(values))
	for _, v := range values {
		items = append(items, From(v))
	}
	return Node{Kind: KindSequence, Items: items}
}

// Nodes classifies v and returns it as a list: the items of a sequence, or
// a single-element list otherwise.
func Nodes(v any) []Node {
	n := From(v)
	if n.Kind == KindSequence {
		return n.Items
	}
	return []Node{n}
}

// From classifies a Go value. The precedence is sequence, renderable,
// mountable, reactive, then function (invalid) and finally primitive.
func From(v any) Node {
	switch x := v.(type) {
	case nil:
		return Empty()
	case Node:
		return x
	case *Node:
		if x == nil {
			return Empty()
		}
		return *x
	case []Node:
		return Node{Kind: KindSequence, Items: x}
	case []any:
		return Seq(x...)
	case []byte:
		return Text(string(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Node{Kind: KindSequence}
		}
		items := make([]Node, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, From(rv.Index(i).Interface()))
		}
		return Node{Kind: KindSequence, Items: items}
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan:
		if rv.IsNil() {
			return Empty()
		}
	}

	if r, ok := v.(Renderable); ok {
		return Node{Kind: KindRenderable, Renderable: r}
	}
	if m, ok := v.(Mountable); ok {
		return Node{Kind: KindMountable, Mountable: m}
	}
	if s, ok := v.(store.Source); ok {
		return Node{Kind: KindReactive, Reactive: s}
	}
	if rv.Kind() == reflect.Func {
		if rv.IsNil() {
			return Empty()
		}
		return Node{Kind: KindInvalid, Invalid: v}
	}
	return Text(Stringify(v))
}

// Stringify converts a primitive to its text content. Nil becomes "".
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
