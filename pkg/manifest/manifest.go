package manifest

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/arbor/internal/errors"
	"github.com/vango-dev/arbor/pkg/element"
	"github.com/vango-dev/arbor/pkg/store"
)

// ComponentFunc builds a registered component from manifest props and
// children. Prop values may be stores.
type ComponentFunc func(props map[string]any, children []any) any

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithComponent registers a component under name.
func WithComponent(name string, fn ComponentFunc) LoaderOption {
	return func(l *Loader) {
		l.components[name] = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader parses manifests.
type Loader struct {
	components map[string]ComponentFunc
	logger     *slog.Logger
}

// NewLoader creates a loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		components: make(map[string]ComponentFunc),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Register adds a component.
func (l *Loader) Register(name string, fn ComponentFunc) {
	l.components[name] = fn
}

// Load reads and parses the manifest at path.
func (l *Loader) Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E120").Wrap(err).WithDetail("The manifest file could not be read.")
	}
	return l.Parse(path, data)
}

// Parse parses manifest data. file is used in error locations only.
func (l *Loader) Parse(file string, data []byte) (*Manifest, error) {
	m := &Manifest{
		File:       file,
		stores:     make(map[string]*store.Atom[any]),
		components: l.components,
		lines:      strings.Split(string(data), "\n"),
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	if len(doc.Content) == 0 {
		return nil, errors.New("E120").WithDetail("The manifest is empty.")
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, m.fail(errors.New("E120").WithDetail("The manifest must be a mapping with stores and root."), top)
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "stores":
			if err := m.decodeStores(value); err != nil {
				return nil, err
			}
		case "root":
			m.root = value
		default:
			return nil, m.fail(errors.New("E120").WithDetail(fmt.Sprintf("Unknown top-level key %q.", key.Value)).
				WithSuggestion("Use stores and root."), key)
		}
	}
	if m.root == nil {
		return nil, m.fail(errors.New("E120").WithDetail("The manifest has no root node."), top)
	}

	// Build once so that every reference is checked up front.
	if _, err := m.build(m.root); err != nil {
		return nil, err
	}
	l.logger.Debug("manifest loaded", "file", file, "stores", len(m.stores))
	return m, nil
}

// Manifest is a parsed manifest.
type Manifest struct {
	File string

	stores     map[string]*store.Atom[any]
	components map[string]ComponentFunc
	root       *yaml.Node
	lines      []string
}

// Description returns a fresh description of the root node. Each call
// returns new builders bound to the same stores.
func (m *Manifest) Description() any {
	desc, err := m.build(m.root)
	if err != nil {
		// Parse already built the root successfully.
		return nil
	}
	return desc
}

// Store returns the named store.
func (m *Manifest) Store(name string) (*store.Atom[any], bool) {
	s, ok := m.stores[name]
	return s, ok
}

// StoreNames returns the declared store names, sorted.
func (m *Manifest) StoreNames() []string {
	names := make([]string, 0, len(m.stores))
	for name := range m.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns the current value of every store.
func (m *Manifest) Snapshot() map[string]any {
	out := make(map[string]any, len(m.stores))
	for name, s := range m.stores {
		out[name] = s.Get()
	}
	return out
}

// Set emits value on the named store.
func (m *Manifest) Set(name string, value any) error {
	s, ok := m.stores[name]
	if !ok {
		return errors.New("E122").WithDetail(fmt.Sprintf("Store %q is not declared.", name))
	}
	s.Set(value)
	return nil
}

// Restore sets every store present in values, ignoring unknown names.
func (m *Manifest) Restore(values map[string]any) {
	for name, v := range values {
		if s, ok := m.stores[name]; ok {
			s.Set(v)
		}
	}
}

func (m *Manifest) decodeStores(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return m.fail(errors.New("E120").WithDetail("stores must be a mapping of names to initial values."), n)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		var initial any
		if err := n.Content[i+1].Decode(&initial); err != nil {
			return m.fail(errors.New("E120").Wrap(err), n.Content[i+1])
		}
		m.stores[n.Content[i].Value] = store.NewAtom(initial)
	}
	return nil
}

// build converts a yaml node to a description.
func (m *Manifest) build(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return m.build(n.Alias)

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, m.fail(errors.New("E120").Wrap(err), n)
		}
		return v, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			child, err := m.build(item)
			if err != nil {
				return nil, err
			}
			out = append(out, child)
		}
		return out, nil

	case yaml.MappingNode:
		fields := mapping(n)
		switch {
		case fields["element"] != nil:
			return m.buildElement(n, fields)
		case fields["store"] != nil:
			return m.lookupStore(fields["store"])
		case fields["component"] != nil:
			return m.buildComponent(fields)
		}
		return nil, m.fail(errors.New("E121"), n)
	}
	return nil, m.fail(errors.New("E121"), n)
}

func (m *Manifest) buildElement(n *yaml.Node, fields map[string]*yaml.Node) (any, error) {
	tag := fields["element"].Value
	if tag == "" {
		return nil, m.fail(errors.New("E121").WithDetail("element needs a tag name."), n)
	}
	props, err := m.buildProps(fields["props"])
	if err != nil {
		return nil, err
	}
	children, err := m.buildChildren(fields["children"])
	if err != nil {
		return nil, err
	}
	return element.New(tag).Props(props).Nodes(children), nil
}

func (m *Manifest) buildComponent(fields map[string]*yaml.Node) (any, error) {
	name := fields["component"]
	fn, ok := m.components[name.Value]
	if !ok {
		return nil, m.fail(errors.New("E123").WithDetail(fmt.Sprintf("Component %q is not registered.", name.Value)), name)
	}
	props, err := m.buildProps(fields["props"])
	if err != nil {
		return nil, err
	}
	children, err := m.buildChildren(fields["children"])
	if err != nil {
		return nil, err
	}
	return fn(props, children), nil
}

func (m *Manifest) buildProps(n *yaml.Node) (map[string]any, error) {
	props := make(map[string]any)
	if n == nil {
		return props, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, m.fail(errors.New("E121").WithDetail("props must be a mapping."), n)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		v, err := m.buildValue(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		props[n.Content[i].Value] = v
	}
	return props, nil
}

// buildValue decodes a property value. {store: name} mappings become the
// store. A sequence holding stores becomes a computed list that follows
// them, so class lists can mix stores and literals.
func (m *Manifest) buildValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		fields := mapping(n)
		if ref := fields["store"]; ref != nil && len(fields) == 1 {
			return m.lookupStore(ref)
		}
		out := make(map[string]bool, len(fields))
		for key, value := range fields {
			var on bool
			if err := value.Decode(&on); err != nil {
				return nil, m.fail(errors.New("E121").WithDetail("Mapping property values must be {store: name} or a class map of booleans."), value)
			}
			out[key] = on
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		var deps []store.Source
		for _, item := range n.Content {
			v, err := m.buildValue(item)
			if err != nil {
				return nil, err
			}
			if src, ok := v.(store.Source); ok {
				deps = append(deps, src)
			}
			out = append(out, v)
		}
		if len(deps) == 0 {
			return out, nil
		}
		return store.NewComputed(func() any { return resolve(out) }, deps...), nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, m.fail(errors.New("E120").Wrap(err), n)
	}
	return v, nil
}

func (m *Manifest) buildChildren(n *yaml.Node) ([]any, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		child, err := m.build(n)
		if err != nil {
			return nil, err
		}
		return []any{child}, nil
	}
	out := make([]any, 0, len(n.Content))
	for _, item := range n.Content {
		child, err := m.build(item)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

func (m *Manifest) lookupStore(ref *yaml.Node) (any, error) {
	s, ok := m.stores[ref.Value]
	if !ok {
		return nil, m.fail(errors.New("E122").WithDetail(fmt.Sprintf("Store %q is not declared under stores.", ref.Value)), ref)
	}
	return s, nil
}

// fail attaches the node's position and the surrounding manifest lines.
func (m *Manifest) fail(err *errors.ArborError, n *yaml.Node) *errors.ArborError {
	err.Location = &errors.Location{File: m.File, Line: n.Line, Column: n.Column}
	from, to := n.Line-3, n.Line+2
	if from < 0 {
		from = 0
	}
	if to > len(m.lines) {
		to = len(m.lines)
	}
	if from < to {
		err.Context = m.lines[from:to]
	}
	return err
}

// resolve replaces the stores in list with their current values.
func resolve(list []any) []any {
	out := make([]any, len(list))
	for i, v := range list {
		if src, ok := v.(store.Source); ok {
			v = src.Current()
		}
		out[i] = v
	}
	return out
}

// mapping returns the values of a mapping node by key.
func mapping(n *yaml.Node) map[string]*yaml.Node {
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out[n.Content[i].Value] = n.Content[i+1]
	}
	return out
}
