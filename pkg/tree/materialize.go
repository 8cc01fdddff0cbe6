package tree

import (
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/arbor/internal/errors"
	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/store"
	"github.com/vango-dev/arbor/pkg/telemetry"
)

// invalidChildText is the content of the placeholder that replaces a
// function value.
const invalidChildText = "arbor: invalid child"

// Materializer expands descriptions into live widgets.
type Materializer struct {
	doc      *dom.Document
	registry *Registry
	opts     options
}

// NewMaterializer returns a materializer with its own registry.
func NewMaterializer(doc *dom.Document, opts ...Option) *Materializer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newMaterializer(doc, NewRegistry(), o)
}

func newMaterializer(doc *dom.Document, reg *Registry, o options) *Materializer {
	reg.recorder = o.recorder
	return &Materializer{doc: doc, registry: reg, opts: o}
}

// Document returns the document widgets are created in.
func (m *Materializer) Document() *dom.Document { return m.doc }

// Registry returns the cleanup registry.
func (m *Materializer) Registry() *Registry { return m.registry }

// Logger returns the diagnostics logger.
func (m *Materializer) Logger() *slog.Logger { return m.opts.logger }

// Recorder returns the metrics recorder, which may be nil.
func (m *Materializer) Recorder() *telemetry.Recorder { return m.opts.recorder }

// MaterializeValue classifies v and materializes it.
func (m *Materializer) MaterializeValue(v any) []*dom.Node {
	return m.Materialize(From(v))
}

// Materialize produces the widgets for n. It never fails: invalid content is
// replaced by a placeholder and reported to the logger.
func (m *Materializer) Materialize(n Node) []*dom.Node {
	switch n.Kind {
	case KindEmpty:
		m.opts.recorder.Materialized(n.Kind.String(), 1)
		return []*dom.Node{m.doc.CreateText("")}

	case KindSequence:
		out := make([]*dom.Node, 0, len(n.Items))
		for _, item := range n.Items {
			out = append(out, m.Materialize(item)...)
		}
		return out

	case KindRenderable:
		return m.renderable(n.Renderable)

	case KindMountable:
		return m.mountable(n.Mountable)

	case KindReactive:
		return m.reactive(n.Reactive)

	case KindInvalid:
		return m.invalid(n.Invalid)

	default:
		m.opts.recorder.Materialized(KindPrimitive.String(), 1)
		return []*dom.Node{m.doc.CreateText(n.Text)}
	}
}

func (m *Materializer) renderable(r Renderable) []*dom.Node {
	content := m.Materialize(Node{Kind: KindSequence, Items: r.Render()})

	// The marker anchors the cleanup even when nothing was rendered.
	marker := m.doc.CreateText("")
	m.registry.Register(marker, r.Cleanup)
	m.opts.recorder.Materialized(KindRenderable.String(), 1)

	out := make([]*dom.Node, 0, len(content)+1)
	out = append(out, marker)
	return append(out, content...)
}

func (m *Materializer) mountable(mt Mountable) []*dom.Node {
	mounted := mt.Mount(m)
	widget := mounted.Node
	if widget == nil {
		widget = m.doc.CreateText("")
	}
	if mounted.Unmount != nil {
		m.registry.Register(widget, mounted.Unmount)
	}
	m.opts.recorder.Materialized(KindMountable.String(), 1)
	return []*dom.Node{widget}
}

func (m *Materializer) reactive(src store.Source) []*dom.Node {
	content := m.MaterializeValue(src.Current())
	start := m.doc.CreateText("")
	end := m.doc.CreateText("")

	r := &region{start: start, end: end, src: src}
	unlisten := src.ListenAny(func(any) {
		m.emit(r)
	})
	m.registry.Register(start, unlisten)
	m.opts.recorder.Materialized(KindReactive.String(), 2)

	out := make([]*dom.Node, 0, len(content)+2)
	out = append(out, start)
	out = append(out, content...)
	return append(out, end)
}

// region is a live reactive region bracketed by its markers.
type region struct {
	start, end *dom.Node
	src        store.Source

	swapping bool
	pending  bool
}

// emit swaps r. An emission that arrives while a swap is materializing is
// deferred until that swap has committed, then the region swaps again from
// the source's current value.
func (m *Materializer) emit(r *region) {
	if r.swapping {
		r.pending = true
		return
	}
	r.swapping = true
	defer func() { r.swapping = false }()

	for {
		r.pending = false
		m.swap(r.start, r.end, r.src)
		if !r.pending {
			return
		}
	}
}

// swap replaces everything between start and end with fresh content from src.
func (m *Materializer) swap(start, end *dom.Node, src store.Source) {
	if start.Parent() == nil {
		m.opts.logger.Debug("region emission ignored: start marker detached", "session", m.opts.id)
		return
	}
	began := time.Now()
	_, span := telemetry.StartSpan(m.opts.ctx, m.opts.tracer, "arbor.region.swap",
		attribute.String("arbor.session_id", m.opts.id))

	next := m.MaterializeValue(src.Current())

	removed := 0
	for child := start.NextSibling(); child != nil && child != end; {
		sibling := child.NextSibling()
		m.registry.Sweep(child)
		child.Remove()
		child = sibling
		removed++
	}
	start.After(next...)

	m.opts.recorder.RegionSwap(time.Since(began))
	span.SetAttributes(
		attribute.Int("arbor.removed", removed),
		attribute.Int("arbor.inserted", len(next)),
	)
	telemetry.EndSpan(span, nil)
}

func (m *Materializer) invalid(v any) []*dom.Node {
	diag := errors.New("E101")
	m.opts.logger.Warn(diag.Message,
		"code", diag.Code,
		"type", fmt.Sprintf("%T", v),
		"hint", "did you mean to call it instead?",
		"session", m.opts.id,
	)
	m.opts.recorder.InvalidChild()
	m.opts.recorder.Materialized(KindInvalid.String(), 1)
	return []*dom.Node{m.doc.CreateComment(invalidChildText)}
}
