package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads an HTML page and returns it as a Document. Attributes become
// string properties. Doctype nodes set the document's doctype.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse html: %w", err)
	}
	d := &Document{}
	d.root = &Node{typ: DocumentNode, doc: d}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			d.doctype = c.Data
			continue
		}
		if n := d.importNode(c); n != nil {
			d.root.AppendChild(n)
		}
	}
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) importNode(src *html.Node) *Node {
	switch src.Type {
	case html.ElementNode:
		n := d.CreateElement(src.Data)
		for _, a := range src.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			n.props = ensureProps(n.props)
			if _, had := n.props[key]; !had {
				n.propOrder = append(n.propOrder, key)
			}
			n.props[key] = a.Val
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if child := d.importNode(c); child != nil {
				child.parent = n
				n.children = append(n.children, child)
			}
		}
		return n
	case html.TextNode:
		return d.CreateText(src.Data)
	case html.CommentNode:
		return d.CreateComment(src.Data)
	}
	return nil
}

func ensureProps(m map[string]any) map[string]any {
	if m == nil {
		return make(map[string]any)
	}
	return m
}
