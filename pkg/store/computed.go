package store

import "sync"

// Computed is a read-only value derived from other sources.
//
// While it has no subscribers a Computed simply evaluates its function on
// every read. The first subscription attaches it to its dependencies; from
// then on the value is cached and recomputed whenever a dependency changes.
// It detaches again when the last subscriber leaves.
type Computed[T any] struct {
	compute func() T
	deps    []Source
	inner   *Atom[T]

	mu        sync.Mutex
	attached  bool
	depUnsubs []func()
}

// NewComputed creates a computed value over deps.
func NewComputed[T any](compute func() T, deps ...Source) *Computed[T] {
	var zero T
	return &Computed[T]{
		compute: compute,
		deps:    deps,
		inner:   NewAtom(zero),
	}
}

// WithEquals sets the equality function used to suppress unchanged emissions.
func (c *Computed[T]) WithEquals(fn func(T, T) bool) *Computed[T] {
	c.inner.WithEquals(fn)
	return c
}

// Get returns the derived value.
func (c *Computed[T]) Get() T {
	c.mu.Lock()
	attached := c.attached
	c.mu.Unlock()
	if attached {
		return c.inner.Get()
	}
	return c.compute()
}

// Subscribe calls fn with the current value now and on every change.
func (c *Computed[T]) Subscribe(fn func(T)) func() {
	c.attach()
	unsub := c.inner.subs.add(fn, c.detach)
	fn(c.inner.Get())
	return unsub
}

// Listen calls fn on every change.
func (c *Computed[T]) Listen(fn func(T)) func() {
	c.attach()
	return c.inner.subs.add(fn, c.detach)
}

// Current implements Source.
func (c *Computed[T]) Current() any { return c.Get() }

// SubscribeAny implements Source.
func (c *Computed[T]) SubscribeAny(fn func(any)) func() {
	return c.Subscribe(func(v T) { fn(v) })
}

// ListenAny implements Source.
func (c *Computed[T]) ListenAny(fn func(any)) func() {
	return c.Listen(func(v T) { fn(v) })
}

func (c *Computed[T]) attach() {
	c.mu.Lock()
	if c.attached {
		c.mu.Unlock()
		return
	}
	c.attached = true
	c.mu.Unlock()

	c.inner.mu.Lock()
	c.inner.value = c.compute()
	c.inner.mu.Unlock()

	unsubs := make([]func(), 0, len(c.deps))
	for _, dep := range c.deps {
		unsubs = append(unsubs, dep.ListenAny(func(any) {
			c.inner.Set(c.compute())
		}))
	}

	c.mu.Lock()
	c.depUnsubs = unsubs
	c.mu.Unlock()
}

func (c *Computed[T]) detach() {
	c.mu.Lock()
	if !c.attached {
		c.mu.Unlock()
		return
	}
	c.attached = false
	unsubs := c.depUnsubs
	c.depUnsubs = nil
	c.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
}
