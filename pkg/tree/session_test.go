package tree_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/store"
	"github.com/vango-dev/arbor/pkg/telemetry"
	"github.com/vango-dev/arbor/pkg/tree"
	"github.com/vango-dev/arbor/pkg/vtest"
)

func TestMountEndToEnd(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	spy := vtest.NewSpy()

	root := fx.Mount([]any{nil, "hi", vtest.NewRenderable(spy, "x")})

	children := fx.Target.Children()
	require.Len(t, children, 4)
	assert.Equal(t, []string{"", "hi", "", "x"}, vtest.Texts(children))
	assert.Equal(t, children, root.Nodes)

	root.Unmount()

	assert.Equal(t, 1, spy.Calls())
	assert.False(t, fx.Target.HasChildNodes())
	assert.Zero(t, fx.Session.Registry().Len())
}

func TestMountUnmountIdempotent(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	spy := vtest.NewSpy()
	root := fx.Mount(vtest.NewRenderable(spy, "x"))

	root.Unmount()
	root.Unmount()
	fx.Session.Unmount(fx.Target)

	assert.Equal(t, 1, spy.Calls())
	assert.False(t, root.Active())
}

func TestMountReplacesPreviousTree(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	first := vtest.NewSpy()
	prev := fx.Mount(vtest.NewRenderable(first, "old"))

	next := fx.Mount("new")

	assert.Equal(t, 1, first.Calls())
	assert.False(t, prev.Active())
	assert.Equal(t, "new", fx.Target.TextContent())
	got, ok := fx.Session.Lookup(fx.Target)
	require.True(t, ok)
	assert.Same(t, next, got)

	// The stale handle must not release the new tree's mount point.
	prev.Unmount()
	_, ok = fx.Session.Lookup(fx.Target)
	assert.True(t, ok)
}

func TestMountReplacesExistingContent(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="app"><p>server</p></div></body></html>`)
	require.NoError(t, err)
	fx := vtest.NewFixture().WithDocument(doc).WithTarget("app").Build()

	fx.Mount("client")

	assert.Equal(t, "client", fx.Target.TextContent())
}

func TestSessionUnmountTarget(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	spy := vtest.NewSpy()
	fx.Mount(vtest.NewRenderable(spy, "x"))
	require.Equal(t, 1, fx.Session.Mounts())

	fx.Session.Unmount(fx.Target)

	assert.Equal(t, 1, spy.Calls())
	assert.False(t, fx.Target.HasChildNodes())
	assert.Zero(t, fx.Session.Mounts())
}

func TestSessionUnmountWithoutMountIsNoop(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	fx.Target.AppendChild(fx.Doc.CreateText("static"))

	fx.Session.Unmount(fx.Target)

	assert.Equal(t, "static", fx.Target.TextContent())
}

func TestDetachedMountStaysLive(t *testing.T) {
	fx := vtest.NewFixture().Build()
	src := store.NewAtom("a")

	root := fx.Mount([]any{"[", src, "]"})
	require.Nil(t, root.Target)
	assert.Equal(t, dom.FragmentNode, root.Container.Type())

	src.Set("b")
	assert.Equal(t, []string{"[", "", "b", "", "]"}, vtest.Texts(root.Current()))

	root.Unmount()
	assert.Zero(t, src.Listeners())
	assert.Zero(t, fx.Session.Mounts())
}

func TestUnmountSweepsSwappedContent(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	initial, swapped := vtest.NewSpy(), vtest.NewSpy()
	src := store.NewAtom[any](vtest.NewRenderable(initial, "one"))
	root := fx.Mount(src)

	src.Set(vtest.NewRenderable(swapped, "two"))
	require.Equal(t, 1, initial.Calls())

	root.Unmount()

	assert.Equal(t, 1, swapped.Calls())
	assert.Zero(t, src.Listeners())
	assert.Zero(t, fx.Session.Registry().Len())
}

func TestSessionIDs(t *testing.T) {
	doc := dom.NewDocument()

	a := tree.NewSession(doc)
	b := tree.NewSession(doc)
	named := tree.NewSession(doc, tree.WithID("preview"))

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "preview", named.ID())
}

func TestSessionMountMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := telemetry.NewRecorder(telemetry.WithRegistry(reg))
	fx := vtest.NewFixture().WithTarget("app").WithRecorder(rec).Build()

	root := fx.Mount(vtest.NewRenderable(nil, "x"))
	assert.Equal(t, float64(1), gathered(t, reg, "arbor_active_mounts"))

	root.Unmount()
	assert.Equal(t, float64(0), gathered(t, reg, "arbor_active_mounts"))
	assert.Equal(t, float64(1), gathered(t, reg, "arbor_teardowns_total"))
}

func TestSessionFlushObserverLoop(t *testing.T) {
	fx := vtest.NewFixture().WithTarget("app").Build()
	n := 0
	fx.Doc.Observe(fx.Target, dom.ObserveOptions{Attributes: true}, func([]dom.MutationRecord, *dom.Observer) {
		n++
		fx.Target.SetProp("data-n", n)
	})
	fx.Target.SetProp("data-n", 0)

	err := fx.Session.Flush()

	require.Error(t, err)
	assert.ErrorIs(t, err, dom.ErrObserverLoop)
	assert.Contains(t, fx.Logs.String(), "code=E102")
}

func TestUnmountSweepsEachWidgetOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := telemetry.NewRecorder(telemetry.WithRegistry(reg))
	fx := vtest.NewFixture().WithTarget("app").WithRecorder(rec).Build()
	src := store.NewAtom("x")

	root := fx.Mount([]any{"a", src})
	require.Len(t, root.Nodes, 4)

	src.Set("y")
	before := gathered(t, reg, "arbor_sweeps_total")
	root.Unmount()

	// Four live children plus the "x" text the swap replaced.
	assert.Equal(t, before+5, gathered(t, reg, "arbor_sweeps_total"))
	assert.Zero(t, fx.Session.Registry().Len())
	assert.Zero(t, src.Listeners())
}
