// Package manifest loads declarative trees from YAML files.
//
// A manifest declares named stores and a root node:
//
//	stores:
//	  count: 0
//	  theme: dark
//	root:
//	  element: main
//	  props:
//	    class: [app, {store: theme}]
//	  children:
//	    - element: h1
//	      children: [Counter]
//	    - {store: count}
//	    - component: badge
//	      props: {label: new}
//
// Scalars are text, sequences are sequences and mappings hold exactly one
// of element, store or component. A {store: name} mapping used as a
// property value binds the property to that store. Components are Go
// functions registered with the Loader.
package manifest
