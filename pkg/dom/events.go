package dom

// Event is a platform event delivered to listeners.
type Event struct {
	// Type is the event name, e.g. "input" or "change".
	Type string

	// Bubbles enables delivery to ancestors after the target.
	Bubbles bool

	// Detail carries an arbitrary payload for custom events.
	Detail any

	target           *Node
	currentTarget    *Node
	defaultPrevented bool
	stopped          bool
	passive          bool
}

// Target returns the node the event was dispatched on.
func (e *Event) Target() *Node { return e.target }

// CurrentTarget returns the node whose listener is running.
func (e *Event) CurrentTarget() *Node { return e.currentTarget }

// PreventDefault marks the event as canceled. Ignored inside passive listeners.
func (e *Event) PreventDefault() {
	if !e.passive {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops delivery to further nodes.
func (e *Event) StopPropagation() { e.stopped = true }

// ListenerOptions configures an event listener.
type ListenerOptions struct {
	Capture bool
	Passive bool
}

// Handler handles a dispatched event.
type Handler func(*Event)

type listener struct {
	handler Handler
	opts    ListenerOptions
	removed bool
}

type interceptor struct {
	fn      Handler
	removed bool
}

// AddEventListener registers handler for events of the given type and
// returns a function that removes it. The remover is idempotent.
func (n *Node) AddEventListener(typ string, handler Handler, opts ...ListenerOptions) func() {
	if handler == nil {
		return func() {}
	}
	l := &listener{handler: handler}
	if len(opts) > 0 {
		l.opts = opts[0]
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]*listener)
	}
	n.listeners[typ] = append(n.listeners[typ], l)

	return func() {
		if l.removed {
			return
		}
		l.removed = true
		list := n.listeners[typ]
		for i, existing := range list {
			if existing == l {
				n.listeners[typ] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns the number of listeners registered for typ.
func (n *Node) ListenerCount(typ string) int {
	return len(n.listeners[typ])
}

// Intercept installs fn to run before any event dispatched on n is delivered.
// It returns a function that removes the interceptor.
func (n *Node) Intercept(fn Handler) func() {
	if fn == nil {
		return func() {}
	}
	ic := &interceptor{fn: fn}
	n.interceptors = append(n.interceptors, ic)
	return func() {
		if ic.removed {
			return
		}
		ic.removed = true
		for i, existing := range n.interceptors {
			if existing == ic {
				n.interceptors = append(n.interceptors[:i], n.interceptors[i+1:]...)
				break
			}
		}
	}
}

// InterceptorCount returns the number of installed interceptors.
func (n *Node) InterceptorCount() int { return len(n.interceptors) }

// Dispatch delivers e to n. Interceptors run first, then capture listeners
// from the root down, then listeners on n, then bubbling listeners when
// e.Bubbles is set. It returns false if a listener prevented the default.
func (n *Node) Dispatch(e *Event) bool {
	if e == nil {
		return true
	}
	for _, ic := range append([]*interceptor(nil), n.interceptors...) {
		if !ic.removed {
			ic.fn(e)
		}
	}

	e.target = n
	var path []*Node
	for p := n.parent; p != nil; p = p.parent {
		path = append(path, p)
	}

	for i := len(path) - 1; i >= 0 && !e.stopped; i-- {
		path[i].invoke(e, phaseCapture)
	}
	if !e.stopped {
		n.invoke(e, phaseTarget)
	}
	if e.Bubbles {
		for i := 0; i < len(path) && !e.stopped; i++ {
			path[i].invoke(e, phaseBubble)
		}
	}
	e.currentTarget = nil
	e.passive = false
	return !e.defaultPrevented
}

type phase uint8

const (
	phaseCapture phase = iota
	phaseTarget
	phaseBubble
)

func (n *Node) invoke(e *Event, ph phase) {
	list := n.listeners[e.Type]
	if len(list) == 0 {
		return
	}
	e.currentTarget = n
	for _, l := range append([]*listener(nil), list...) {
		if l.removed {
			continue
		}
		if ph == phaseCapture && !l.opts.Capture {
			continue
		}
		if ph == phaseBubble && l.opts.Capture {
			continue
		}
		e.passive = l.opts.Passive
		l.handler(e)
		e.passive = false
	}
}
