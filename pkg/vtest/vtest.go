package vtest

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/arbor/pkg/dom"
	"github.com/vango-dev/arbor/pkg/render"
	"github.com/vango-dev/arbor/pkg/telemetry"
	"github.com/vango-dev/arbor/pkg/tree"
)

// FixtureBuilder allows fluent construction of test fixtures.
type FixtureBuilder struct {
	doc      *dom.Document
	targetID string
	recorder *telemetry.Recorder
	level    slog.Level
	opts     []tree.Option
}

// NewFixture creates a new fixture builder with an empty document.
//
// Example:
//
//	fx := vtest.NewFixture().WithTarget("app").Build()
func NewFixture() *FixtureBuilder {
	return &FixtureBuilder{
		doc:   dom.NewDocument(),
		level: slog.LevelDebug,
	}
}

// WithDocument uses doc instead of an empty document.
func (b *FixtureBuilder) WithDocument(doc *dom.Document) *FixtureBuilder {
	b.doc = doc
	return b
}

// WithTarget creates a div with the given id under body and uses it as the
// mount target. An element with that id already in the document is reused.
func (b *FixtureBuilder) WithTarget(id string) *FixtureBuilder {
	b.targetID = id
	return b
}

// WithRecorder attaches a metrics recorder to the session.
func (b *FixtureBuilder) WithRecorder(r *telemetry.Recorder) *FixtureBuilder {
	b.recorder = r
	return b
}

// WithLogLevel sets the minimum level captured in Fixture.Logs.
func (b *FixtureBuilder) WithLogLevel(level slog.Level) *FixtureBuilder {
	b.level = level
	return b
}

// WithOptions passes extra session options.
func (b *FixtureBuilder) WithOptions(opts ...tree.Option) *FixtureBuilder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build returns the fixture.
func (b *FixtureBuilder) Build() *Fixture {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: b.level}))

	opts := []tree.Option{tree.WithLogger(logger), tree.WithID("test")}
	if b.recorder != nil {
		opts = append(opts, tree.WithRecorder(b.recorder))
	}
	opts = append(opts, b.opts...)

	fx := &Fixture{
		Doc:     b.doc,
		Session: tree.NewSession(b.doc, opts...),
		Logs:    logs,
	}
	if b.targetID != "" {
		fx.Target = b.doc.GetElementByID(b.targetID)
		if fx.Target == nil {
			fx.Target = b.doc.CreateElement("div")
			fx.Target.SetProp("id", b.targetID)
			b.doc.Body().AppendChild(fx.Target)
		}
	}
	return fx
}

// Fixture is a document, a session and an optional mount target.
type Fixture struct {
	Doc     *dom.Document
	Session *tree.Session
	Target  *dom.Node
	Logs    *bytes.Buffer
}

// Mount mounts desc into the fixture target, or detached when there is none.
func (f *Fixture) Mount(desc any) *tree.Root {
	return f.Session.Mount(desc, f.Target)
}

// Materialize materializes desc with the session's materializer.
func (f *Fixture) Materialize(desc any) []*dom.Node {
	return f.Session.Materializer().MaterializeValue(desc)
}

// Flush delivers pending mutation records and fails the test on an
// observer loop.
func (f *Fixture) Flush(tb testing.TB) {
	tb.Helper()
	if err := f.Session.Flush(); err != nil {
		tb.Fatalf("flush: %v", err)
	}
}

// Texts returns the text of each node. Elements contribute their text
// content and comments their data.
func Texts(nodes []*dom.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch n.Type() {
		case dom.TextNode, dom.CommentNode:
			out = append(out, n.Text())
		default:
			out = append(out, n.TextContent())
		}
	}
	return out
}

// Between returns the siblings strictly between start and end.
func Between(start, end *dom.Node) []*dom.Node {
	var out []*dom.Node
	for n := start.NextSibling(); n != nil && n != end; n = n.NextSibling() {
		out = append(out, n)
	}
	return out
}

// RenderToString renders a live node and returns the HTML string.
func RenderToString(node *dom.Node) string {
	html, err := render.NewRenderer(render.Config{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectText fails the test if node's text content differs from want.
func ExpectText(tb testing.TB, node *dom.Node, want string) {
	tb.Helper()
	if got := node.TextContent(); got != want {
		tb.Errorf("text content = %q, want %q", got, want)
	}
}

// ExpectContains fails the test if the rendered HTML does not contain text.
func ExpectContains(tb testing.TB, node *dom.Node, text string) {
	tb.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, text) {
		tb.Errorf("expected rendered output to contain %q\nGot: %s", text, html)
	}
}

// ExpectNotContains fails the test if the rendered HTML contains text.
func ExpectNotContains(tb testing.TB, node *dom.Node, text string) {
	tb.Helper()
	html := RenderToString(node)
	if strings.Contains(html, text) {
		tb.Errorf("expected rendered output NOT to contain %q\nGot: %s", text, html)
	}
}
