// Package store provides the reactive sources arbor binds to.
//
// The engine treats a reactive source as an opaque capability: read the
// current value, subscribe (called now and on every change) and listen
// (called on change only). Source is the type-erased form of that capability;
// Atom and Computed are the reference implementations.
//
// # Core Types
//
// Atom[T] is a writable value container:
//
//	count := store.NewAtom(0)
//	count.Get()                                // 0
//	stop := count.Listen(func(n int) { ... })  // change notifications only
//	count.Set(5)
//	stop()
//
// Computed[T] derives a value from other sources and re-emits when any of them
// changes:
//
//	label := store.NewComputed(func() string {
//	    return fmt.Sprintf("%d items", count.Get())
//	}, count)
//
// # Thread Safety
//
// Values are guarded by locks and notifications use a copy-before-notify
// pattern, so subscribing and unsubscribing from inside a callback is safe.
// Delivery order across goroutines is not defined; the engine itself runs on a
// single goroutine.
package store
