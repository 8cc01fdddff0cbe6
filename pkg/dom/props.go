package dom

// ClassKey is the property that holds the element's class list.
const ClassKey = "class"

// Prop returns the value of a property and whether it is set.
func (n *Node) Prop(key string) (any, bool) {
	if n.props == nil {
		return nil, false
	}
	v, ok := n.props[key]
	return v, ok
}

// PropKeys returns the property keys in first-set order.
func (n *Node) PropKeys() []string {
	out := make([]string, len(n.propOrder))
	copy(out, n.propOrder)
	return out
}

// SetProp sets a property on an element and queues an attribute mutation
// record. Records are queued even when the value does not change.
func (n *Node) SetProp(key string, value any) {
	if n.typ != ElementNode {
		return
	}
	if n.props == nil {
		n.props = make(map[string]any)
	}
	old, had := n.props[key]
	if !had {
		n.propOrder = append(n.propOrder, key)
	}
	n.props[key] = value
	n.recordAttribute(key, old)
}

// RemoveProp deletes a property from an element.
func (n *Node) RemoveProp(key string) {
	if n.typ != ElementNode || n.props == nil {
		return
	}
	old, had := n.props[key]
	if !had {
		return
	}
	delete(n.props, key)
	for i, k := range n.propOrder {
		if k == key {
			n.propOrder = append(n.propOrder[:i], n.propOrder[i+1:]...)
			break
		}
	}
	n.recordAttribute(key, old)
}

// ID returns the element's id property as a string.
func (n *Node) ID() string {
	if v, ok := n.Prop("id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (n *Node) recordAttribute(key string, old any) {
	if n.doc == nil {
		return
	}
	n.doc.enqueue(MutationRecord{
		Type:          MutationAttributes,
		Target:        n,
		AttributeName: key,
		OldValue:      old,
	})
}
