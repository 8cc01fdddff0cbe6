package dom

import "strings"

// NodeType is the node type discriminator.
type NodeType uint8

const (
	ElementNode  NodeType = iota // <div>, <input>, etc.
	TextNode                     // Plain text, also used for empty markers
	CommentNode                  // <!-- ... -->
	FragmentNode                 // Parentless container
	DocumentNode                 // Document root
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case FragmentNode:
		return "Fragment"
	case DocumentNode:
		return "Document"
	default:
		return "Unknown"
	}
}

// Node is a live widget. Identity is the pointer.
type Node struct {
	typ  NodeType
	tag  string // Element tag name, lower case
	data string // Text or comment content
	doc  *Document

	parent   *Node
	children []*Node

	props     map[string]any
	propOrder []string

	listeners    map[string][]*listener
	interceptors []*interceptor
}

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// Tag returns the element tag name, or "" for non-elements.
func (n *Node) Tag() string { return n.tag }

// Text returns the content of a text or comment node.
func (n *Node) Text() string { return n.data }

// SetText replaces the content of a text or comment node.
func (n *Node) SetText(s string) {
	if n.typ == TextNode || n.typ == CommentNode {
		n.data = s
	}
}

// Document returns the document that created the node.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent node, or nil if detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a snapshot of the node's children.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// HasChildNodes reports whether the node has children.
func (n *Node) HasChildNodes() bool { return len(n.children) > 0 }

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// NextSibling returns the following sibling or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.indexOf(n)
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}

// PrevSibling returns the preceding sibling or nil.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.indexOf(n)
	if i <= 0 {
		return nil
	}
	return n.parent.children[i-1]
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	switch n.typ {
	case TextNode:
		return n.data
	case CommentNode:
		return ""
	}
	var b strings.Builder
	var walk func(*Node)
	walk = func(c *Node) {
		if c.typ == TextNode {
			b.WriteString(c.data)
			return
		}
		for _, cc := range c.children {
			walk(cc)
		}
	}
	walk(n)
	return b.String()
}

// AppendChild appends nodes as the last children of n, moving them if they
// are attached elsewhere.
func (n *Node) AppendChild(nodes ...*Node) {
	added := n.adopt(nodes)
	if len(added) == 0 {
		return
	}
	n.children = append(n.children, added...)
	n.recordChildList(added, nil)
}

// After inserts nodes immediately after n, in order. It is a no-op when n is
// detached.
func (n *Node) After(nodes ...*Node) {
	p := n.parent
	if p == nil {
		return
	}
	filtered := make([]*Node, 0, len(nodes))
	for _, c := range nodes {
		if c != nil && c != n {
			filtered = append(filtered, c)
		}
	}
	added := p.adopt(filtered)
	if len(added) == 0 {
		return
	}
	idx := p.indexOf(n) + 1
	p.insertAt(idx, added)
	p.recordChildList(added, nil)
}

// Before inserts nodes immediately before n, in order. It is a no-op when n
// is detached.
func (n *Node) Before(nodes ...*Node) {
	p := n.parent
	if p == nil {
		return
	}
	filtered := make([]*Node, 0, len(nodes))
	for _, c := range nodes {
		if c != nil && c != n {
			filtered = append(filtered, c)
		}
	}
	added := p.adopt(filtered)
	if len(added) == 0 {
		return
	}
	p.insertAt(p.indexOf(n), added)
	p.recordChildList(added, nil)
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	p.removeChild(n)
	p.recordChildList(nil, []*Node{n})
}

// ReplaceChildren replaces all children of n with nodes.
func (n *Node) ReplaceChildren(nodes ...*Node) {
	added := n.adopt(nodes)
	removed := n.children
	for _, c := range removed {
		c.parent = nil
	}
	n.children = append([]*Node(nil), added...)
	if len(added) > 0 || len(removed) > 0 {
		n.recordChildList(added, removed)
	}
}

// adopt detaches each node from its current parent and sets n as the new
// parent. Nil nodes and duplicates are dropped.
func (n *Node) adopt(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	seen := make(map[*Node]bool, len(nodes))
	for _, c := range nodes {
		if c == nil || seen[c] || c.Contains(n) {
			continue
		}
		seen[c] = true
		if c.parent != nil {
			old := c.parent
			old.removeChild(c)
			old.recordChildList(nil, []*Node{c})
		}
		c.parent = n
		out = append(out, c)
	}
	return out
}

func (n *Node) indexOf(c *Node) int {
	for i, cc := range n.children {
		if cc == c {
			return i
		}
	}
	return -1
}

func (n *Node) insertAt(idx int, nodes []*Node) {
	if idx < 0 || idx > len(n.children) {
		idx = len(n.children)
	}
	tail := append([]*Node(nil), n.children[idx:]...)
	n.children = append(append(n.children[:idx], nodes...), tail...)
}

func (n *Node) removeChild(c *Node) {
	i := n.indexOf(c)
	if i < 0 {
		return
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	c.parent = nil
}

func (n *Node) recordChildList(added, removed []*Node) {
	if n.doc == nil {
		return
	}
	n.doc.enqueue(MutationRecord{
		Type:    MutationChildList,
		Target:  n,
		Added:   added,
		Removed: removed,
	})
}
