package el

import "github.com/vango-dev/arbor/pkg/dom"

// Attr is a property argument to an element constructor.
type Attr struct {
	Key   string
	Value any
}

// On is an event listener argument to an element constructor.
type On struct {
	Type    string
	Handler dom.Handler
	Options dom.ListenerOptions
}
