package dom

import "errors"

// MaxFlushRounds bounds the number of delivery rounds in a single Flush.
const MaxFlushRounds = 1000

// ErrObserverLoop is returned by Flush when observers keep producing records
// for more than MaxFlushRounds rounds.
var ErrObserverLoop = errors.New("dom: mutation observers did not settle")

// MutationType identifies the kind of a MutationRecord.
type MutationType uint8

const (
	MutationAttributes MutationType = iota + 1
	MutationChildList
)

// String returns the string representation of the MutationType.
func (t MutationType) String() string {
	switch t {
	case MutationAttributes:
		return "attributes"
	case MutationChildList:
		return "childList"
	default:
		return "unknown"
	}
}

// MutationRecord describes a single change to the tree.
type MutationRecord struct {
	Type          MutationType
	Target        *Node
	AttributeName string
	OldValue      any
	Added         []*Node
	Removed       []*Node
}

// ObserveOptions selects which records an observer receives.
type ObserveOptions struct {
	Attributes bool
	ChildList  bool
	Subtree    bool
}

// ObserverFunc receives the records queued for an observer since the last
// delivery.
type ObserverFunc func(records []MutationRecord, obs *Observer)

// Observer watches a node for mutations.
type Observer struct {
	doc          *Document
	target       *Node
	opts         ObserveOptions
	callback     ObserverFunc
	queue        []MutationRecord
	dirty        bool
	disconnected bool
}

// Disconnect stops the observer and drops any undelivered records.
func (o *Observer) Disconnect() {
	if o.disconnected {
		return
	}
	o.disconnected = true
	o.queue = nil
	d := o.doc
	list := d.observers[o.target]
	for i, existing := range list {
		if existing == o {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(d.observers, o.target)
	} else {
		d.observers[o.target] = list
	}
	d.observerCount--
}

// TakeRecords returns and clears the observer's undelivered records.
func (o *Observer) TakeRecords() []MutationRecord {
	recs := o.queue
	o.queue = nil
	return recs
}

// wants reports whether o selects records of rec's type. The caller has
// already established that rec.Target is o.target or, for subtree
// observers, one of its descendants.
func (o *Observer) wants(rec MutationRecord) bool {
	switch rec.Type {
	case MutationAttributes:
		return o.opts.Attributes
	case MutationChildList:
		return o.opts.ChildList
	default:
		return false
	}
}

// Document creates nodes and owns the observer queue.
type Document struct {
	root    *Node
	doctype string

	// observers are indexed by target so a record only visits the
	// observers on its target and that target's ancestors.
	observers     map[*Node][]*Observer
	observerCount int
	dirty         []*Observer
	flushing  bool
}

// NewDocument returns a document with an empty html/head/body skeleton.
func NewDocument() *Document {
	d := &Document{doctype: "html"}
	d.root = &Node{typ: DocumentNode, doc: d}
	html := d.CreateElement("html")
	html.AppendChild(d.CreateElement("head"), d.CreateElement("body"))
	d.root.AppendChild(html)
	return d
}

// Root returns the document node.
func (d *Document) Root() *Node { return d.root }

// Doctype returns the document type name, or "" if none.
func (d *Document) Doctype() string { return d.doctype }

// Body returns the first body element, or nil.
func (d *Document) Body() *Node { return d.FirstByTag("body") }

// Head returns the first head element, or nil.
func (d *Document) Head() *Node { return d.FirstByTag("head") }

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{typ: ElementNode, tag: tag, doc: d}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(s string) *Node {
	return &Node{typ: TextNode, data: s, doc: d}
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(s string) *Node {
	return &Node{typ: CommentNode, data: s, doc: d}
}

// CreateFragment creates a parentless container node.
func (d *Document) CreateFragment() *Node {
	return &Node{typ: FragmentNode, doc: d}
}

// GetElementByID returns the first element whose id property equals id.
func (d *Document) GetElementByID(id string) *Node {
	return d.find(func(n *Node) bool { return n.typ == ElementNode && n.ID() == id })
}

// FirstByTag returns the first element with the given tag name.
func (d *Document) FirstByTag(tag string) *Node {
	return d.find(func(n *Node) bool { return n.typ == ElementNode && n.tag == tag })
}

func (d *Document) find(pred func(*Node) bool) *Node {
	var walk func(*Node) *Node
	walk = func(n *Node) *Node {
		if pred(n) {
			return n
		}
		for _, c := range n.children {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(d.root)
}

// Observe registers callback for mutations on target selected by opts.
func (d *Document) Observe(target *Node, opts ObserveOptions, callback ObserverFunc) *Observer {
	o := &Observer{doc: d, target: target, opts: opts, callback: callback}
	if d.observers == nil {
		d.observers = make(map[*Node][]*Observer)
	}
	d.observers[target] = append(d.observers[target], o)
	d.observerCount++
	return o
}

// ObserverCount returns the number of connected observers.
func (d *Document) ObserverCount() int { return d.observerCount }

// Pending reports whether any observer has undelivered records.
func (d *Document) Pending() bool { return len(d.dirty) > 0 }

// Flush delivers queued records to their observers. Records queued while
// delivering are delivered in the same call.
func (d *Document) Flush() error {
	if d.flushing {
		return nil
	}
	d.flushing = true
	defer func() { d.flushing = false }()

	for round := 0; len(d.dirty) > 0; round++ {
		if round >= MaxFlushRounds {
			for _, o := range d.dirty {
				o.queue = nil
				o.dirty = false
			}
			d.dirty = nil
			return ErrObserverLoop
		}
		batch := d.dirty
		d.dirty = nil
		for _, o := range batch {
			o.dirty = false
			recs := o.queue
			o.queue = nil
			if o.disconnected || len(recs) == 0 || o.callback == nil {
				continue
			}
			o.callback(recs, o)
		}
	}
	return nil
}

func (d *Document) enqueue(rec MutationRecord) {
	if d.observerCount == 0 {
		return
	}
	for n := rec.Target; n != nil; n = n.parent {
		for _, o := range d.observers[n] {
			if n != rec.Target && !o.opts.Subtree {
				continue
			}
			if !o.wants(rec) {
				continue
			}
			o.queue = append(o.queue, rec)
			if !o.dirty {
				o.dirty = true
				d.dirty = append(d.dirty, o)
			}
		}
	}
}
