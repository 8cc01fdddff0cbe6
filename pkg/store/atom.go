package store

import (
	"reflect"
	"sync"
)

// Source is the capability the engine consumes from a reactive store.
type Source interface {
	// Current returns the value without subscribing.
	Current() any

	// SubscribeAny calls fn with the current value immediately and again on
	// every change. The returned function unsubscribes and is idempotent.
	SubscribeAny(fn func(any)) (unsubscribe func())

	// ListenAny calls fn on every change, but not immediately.
	ListenAny(fn func(any)) (unlisten func())
}

// subscriber is a registered change callback.
type subscriber[T any] struct {
	id      uint64
	fn      func(T)
	removed bool
}

// subscribers provides subscription management shared by Atom and Computed.
type subscribers[T any] struct {
	list []*subscriber[T]

	// mu protects list and the removed flags.
	mu sync.Mutex
}

// add registers fn and returns its remover.
func (s *subscribers[T]) add(fn func(T), onEmpty func()) func() {
	sub := &subscriber[T]{id: nextID(), fn: fn}

	s.mu.Lock()
	s.list = append(s.list, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		if sub.removed {
			s.mu.Unlock()
			return
		}
		sub.removed = true
		for i, existing := range s.list {
			if existing.id == sub.id {
				s.list = append(s.list[:i], s.list[i+1:]...)
				break
			}
		}
		empty := len(s.list) == 0
		s.mu.Unlock()

		if empty && onEmpty != nil {
			onEmpty()
		}
	}
}

// notify calls every subscriber registered before the call.
// Uses copy-before-notify to avoid holding the lock during callbacks.
func (s *subscribers[T]) notify(value T) {
	s.mu.Lock()
	subs := make([]*subscriber[T], len(s.list))
	copy(subs, s.list)
	s.mu.Unlock()

	for _, sub := range subs {
		s.mu.Lock()
		removed := sub.removed
		s.mu.Unlock()
		if !removed {
			sub.fn(value)
		}
	}
}

func (s *subscribers[T]) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}

// Atom is a writable reactive value.
type Atom[T any] struct {
	id   uint64
	subs subscribers[T]

	// value is the current value.
	value T

	// mu protects value.
	mu sync.RWMutex

	// equal decides whether a Set is a change. Nil uses defaultEquals.
	equal func(T, T) bool
}

// NewAtom creates an atom holding initial.
func NewAtom[T any](initial T) *Atom[T] {
	return &Atom[T]{id: nextID(), value: initial}
}

// ID returns the atom's unique identifier.
func (a *Atom[T]) ID() uint64 { return a.id }

// Get returns the current value.
func (a *Atom[T]) Get() T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.value
}

// Set stores value and notifies listeners if it differs from the current one.
func (a *Atom[T]) Set(value T) {
	a.mu.Lock()
	changed := !a.equals(a.value, value)
	if changed {
		a.value = value
	}
	a.mu.Unlock()

	if changed {
		a.subs.notify(value)
	}
}

// Update atomically reads and replaces the value.
func (a *Atom[T]) Update(fn func(T) T) {
	a.mu.Lock()
	old := a.value
	next := fn(old)
	changed := !a.equals(old, next)
	if changed {
		a.value = next
	}
	a.mu.Unlock()

	if changed {
		a.subs.notify(next)
	}
}

// WithEquals sets a custom equality function and returns the atom.
func (a *Atom[T]) WithEquals(fn func(T, T) bool) *Atom[T] {
	a.equal = fn
	return a
}

// Subscribe calls fn with the current value now and on every change.
func (a *Atom[T]) Subscribe(fn func(T)) func() {
	unsub := a.subs.add(fn, nil)
	fn(a.Get())
	return unsub
}

// Listen calls fn on every change.
func (a *Atom[T]) Listen(fn func(T)) func() {
	return a.subs.add(fn, nil)
}

// Listeners returns the number of active subscriptions.
func (a *Atom[T]) Listeners() int { return a.subs.count() }

// Current implements Source.
func (a *Atom[T]) Current() any { return a.Get() }

// SubscribeAny implements Source.
func (a *Atom[T]) SubscribeAny(fn func(any)) func() {
	return a.Subscribe(func(v T) { fn(v) })
}

// ListenAny implements Source.
func (a *Atom[T]) ListenAny(fn func(any)) func() {
	return a.Listen(func(v T) { fn(v) })
}

func (a *Atom[T]) equals(x, y T) bool {
	if a.equal != nil {
		return a.equal(x, y)
	}
	return defaultEquals(x, y)
}

// defaultEquals uses == for common comparable types and reflect.DeepEqual
// for everything else. Values of different dynamic types are never equal.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return sameAs(av, b)
	case int64:
		return sameAs(av, b)
	case int32:
		return sameAs(av, b)
	case uint:
		return sameAs(av, b)
	case uint64:
		return sameAs(av, b)
	case float64:
		return sameAs(av, b)
	case float32:
		return sameAs(av, b)
	case string:
		return sameAs(av, b)
	case bool:
		return sameAs(av, b)
	default:
		return reflect.DeepEqual(a, b)
	}
}

func sameAs[V comparable](a V, b any) bool {
	bv, ok := b.(V)
	return ok && a == bv
}
