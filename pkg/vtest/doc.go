// Package vtest provides testing helpers for arbor trees.
//
// The vtest package reduces boilerplate when testing mounts by providing a
// fluent fixture builder, teardown spies and assertions over live widgets.
//
// # Quick Start
//
//	func TestGreeting(t *testing.T) {
//	    fx := vtest.NewFixture().WithTarget("app").Build()
//	    fx.Mount([]any{"hello", " ", "world"})
//	    vtest.ExpectText(t, fx.Target, "hello world")
//	}
//
// # Fluent Fixture Builder
//
// The fixture builder allows chaining setup operations:
//
//	fx := vtest.NewFixture().
//	    WithTarget("app").
//	    WithRecorder(rec).
//	    Build()
//
// Logs written by the session are captured in fx.Logs.
//
// # Spies
//
// A Spy counts teardown invocations:
//
//	spy := vtest.NewSpy()
//	r := vtest.NewRenderable(spy, "x")
//	root := fx.Mount(r)
//	root.Unmount()
//	if spy.Calls() != 1 {
//	    t.Errorf("cleanup ran %d times", spy.Calls())
//	}
package vtest
