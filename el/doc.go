// Package el provides the element DSL for arbor.
//
// Every HTML tag has a constructor returning an *element.Builder. Arguments
// are classified by type: Attr sets a property, On attaches a listener, nil
// is ignored and everything else becomes a child.
//
//	import . "github.com/vango-dev/arbor/el"
//
//	form := Form(
//	    Class("search", map[string]bool{"busy": busy}),
//	    Input(Type("search"), Value(query), OnInput(update)),
//	    Button(Type("submit"), "Go"),
//	)
//
// The result is still a builder, so the fluent methods remain available:
//
//	Div(ID("app")).Node(body, tree.Prepend)
package el
