package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"golang.org/x/net/html"

	"github.com/vango-dev/arbor/pkg/dom"
)

// MarkerComment is the comment text written for markers when
// Config.MarkerComments is set.
const MarkerComment = "arbor"

// Config configures the HTML renderer.
type Config struct {
	// MarkerComments renders empty text nodes as <!--arbor--> comments.
	MarkerComments bool
}

// Renderer converts live nodes to HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config}
}

// RenderToString renders node and its subtree to a string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams node and its subtree to w. Fragments and documents
// render their children only.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	if node == nil {
		return nil
	}
	switch node.Type() {
	case dom.FragmentNode, dom.DocumentNode:
		return r.RenderChildren(w, node)
	}
	converted := r.convert(node)
	if converted == nil {
		return nil
	}
	return html.Render(w, converted)
}

// RenderChildren streams the children of node to w, without node itself.
func (r *Renderer) RenderChildren(w io.Writer, node *dom.Node) error {
	if node == nil {
		return nil
	}
	for _, child := range node.Children() {
		if err := r.RenderToWriter(w, child); err != nil {
			return err
		}
	}
	return nil
}

// RenderDocument renders a whole document, including its doctype.
func (r *Renderer) RenderDocument(w io.Writer, doc *dom.Document) error {
	if doctype := doc.Doctype(); doctype != "" {
		if _, err := fmt.Fprintf(w, "<!DOCTYPE %s>", doctype); err != nil {
			return err
		}
	}
	return r.RenderToWriter(w, doc.Root())
}

// convert builds the html.Node tree for n. Empty text nodes yield nil
// unless marker comments are enabled.
func (r *Renderer) convert(n *dom.Node) *html.Node {
	switch n.Type() {
	case dom.TextNode:
		if n.Text() == "" {
			if r.config.MarkerComments {
				return &html.Node{Type: html.CommentNode, Data: MarkerComment}
			}
			return nil
		}
		return &html.Node{Type: html.TextNode, Data: n.Text()}

	case dom.CommentNode:
		return &html.Node{Type: html.CommentNode, Data: n.Text()}

	case dom.ElementNode:
		out := &html.Node{
			Type: html.ElementNode,
			Data: n.Tag(),
			Attr: attributes(n),
		}
		// Void elements cannot hold content.
		if !isVoidElement(n.Tag()) {
			r.appendChildren(out, n)
		}
		return out

	default:
		// Nested fragments are transparent.
		out := &html.Node{Type: html.DocumentNode}
		r.appendChildren(out, n)
		return out
	}
}

func (r *Renderer) appendChildren(out *html.Node, n *dom.Node) {
	for _, child := range n.Children() {
		converted := r.convert(child)
		if converted == nil {
			continue
		}
		if converted.Type == html.DocumentNode {
			for c := converted.FirstChild; c != nil; {
				next := c.NextSibling
				converted.RemoveChild(c)
				out.AppendChild(c)
				c = next
			}
			continue
		}
		out.AppendChild(converted)
	}
}

// attributes converts the element's properties in first-set order.
func attributes(n *dom.Node) []html.Attribute {
	keys := n.PropKeys()
	attrs := make([]html.Attribute, 0, len(keys))
	for _, key := range keys {
		value, _ := n.Prop(key)
		if value == nil || reflect.TypeOf(value).Kind() == reflect.Func {
			continue
		}
		if b, ok := value.(bool); ok && isBooleanAttr(key) {
			if b {
				attrs = append(attrs, html.Attribute{Key: key})
			}
			continue
		}
		attrs = append(attrs, html.Attribute{Key: key, Val: attrToString(value)})
	}
	return attrs
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
