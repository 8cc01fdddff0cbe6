package tree

import (
	"errors"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel/attribute"

	arborerrors "github.com/vango-dev/arbor/internal/errors"
	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/telemetry"
)

// Session owns the cleanup registry, the materializer and the table of
// active mount points for one document.
//
// A Session is not safe for concurrent use. All mounts, unmounts, store
// emissions and event dispatches touching its widgets must happen on the
// same goroutine, or be serialized by the caller.
type Session struct {
	id     string
	doc    *dom.Document
	m      *Materializer
	points map[*dom.Node]*Root
	opts   options
}

// NewSession creates a session bound to doc.
func NewSession(doc *dom.Document, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = xid.New().String()
	}
	o.logger = o.logger.With("session", o.id)
	return &Session{
		id:     o.id,
		doc:    doc,
		m:      newMaterializer(doc, NewRegistry(), o),
		points: make(map[*dom.Node]*Root),
		opts:   o,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Document returns the session's document.
func (s *Session) Document() *dom.Document { return s.doc }

// Registry returns the session's cleanup registry.
func (s *Session) Registry() *Registry { return s.m.registry }

// Materializer returns the session's materializer.
func (s *Session) Materializer() *Materializer { return s.m }

// Root is a top-level tree produced by Session.Mount.
type Root struct {
	// Nodes are the widgets produced by the initial materialization.
	Nodes []*dom.Node

	// Target is the node passed to Mount, nil for detached mounts.
	Target *dom.Node

	// Container holds the live widgets: Target, or a fragment for
	// detached mounts.
	Container *dom.Node

	session *Session
	done    bool
}

// Mount materializes desc. With a non-nil target, whatever was mounted there
// is torn down first and the target's content is replaced. With a nil target
// the widgets are placed in a detached fragment so reactive regions stay live.
func (s *Session) Mount(desc any, target *dom.Node) *Root {
	_, span := telemetry.StartSpan(s.opts.ctx, s.opts.tracer, "arbor.mount",
		attribute.String("arbor.session_id", s.id),
		attribute.Bool("arbor.detached", target == nil),
	)
	defer telemetry.EndSpan(span, nil)

	if target != nil {
		if prev, ok := s.points[target]; ok {
			s.opts.logger.Debug("replacing mounted tree", "target", describe(target))
			prev.Unmount()
		}
	}

	nodes := s.m.MaterializeValue(desc)
	root := &Root{Nodes: nodes, Target: target, session: s}
	if target != nil {
		target.ReplaceChildren(nodes...)
		root.Container = target
		s.points[target] = root
	} else {
		root.Container = s.doc.CreateFragment()
		root.Container.AppendChild(nodes...)
	}

	s.opts.recorder.MountOpened()
	span.SetAttributes(attribute.Int("arbor.nodes", len(nodes)))
	s.opts.logger.Debug("mounted", "target", describe(target), "nodes", len(nodes))
	return root
}

// Unmount tears down whatever is mounted at target and clears its content.
// It does nothing when nothing is mounted there.
func (s *Session) Unmount(target *dom.Node) {
	if root, ok := s.points[target]; ok {
		root.Unmount()
	}
}

// Lookup returns the tree currently mounted at target.
func (s *Session) Lookup(target *dom.Node) (*Root, bool) {
	root, ok := s.points[target]
	return root, ok
}

// Mounts returns the number of occupied mount targets.
func (s *Session) Mounts() int { return len(s.points) }

// Flush delivers pending mutation records. An observer loop is logged and
// returned.
func (s *Session) Flush() error {
	err := s.doc.Flush()
	if errors.Is(err, dom.ErrObserverLoop) {
		diag := arborerrors.New("E102").Wrap(err)
		s.opts.logger.Error(diag.Message, "code", diag.Code, "rounds", dom.MaxFlushRounds)
		return diag
	}
	return err
}

// Unmount sweeps every widget of the tree, clears the container and releases
// the mount point if this tree still owns it. Calling it again does nothing.
func (r *Root) Unmount() {
	if r.done {
		return
	}
	r.done = true
	s := r.session

	_, span := telemetry.StartSpan(s.opts.ctx, s.opts.tracer, "arbor.unmount",
		attribute.String("arbor.session_id", s.id))
	defer telemetry.EndSpan(span, nil)

	// Region swaps may have replaced some of the initial nodes, so the live
	// children are swept first and initial nodes only when they left the
	// container.
	for _, child := range r.Container.Children() {
		s.m.registry.Sweep(child)
	}
	for _, n := range r.Nodes {
		if n.Parent() != r.Container {
			s.m.registry.Sweep(n)
		}
	}
	r.Container.ReplaceChildren()

	if r.Target != nil && s.points[r.Target] == r {
		delete(s.points, r.Target)
	}
	s.opts.recorder.MountClosed()
	s.opts.logger.Debug("unmounted", "target", describe(r.Target))
}

// Current returns the live top-level widgets of the tree.
func (r *Root) Current() []*dom.Node {
	return r.Container.Children()
}

// Active reports whether the tree has not been unmounted.
func (r *Root) Active() bool { return !r.done }

func describe(n *dom.Node) string {
	if n == nil {
		return "<detached>"
	}
	if id := n.ID(); id != "" {
		return n.Tag() + "#" + id
	}
	return n.Type().String() + ":" + n.Tag()
}
