// Package ast defines the SDL document tree: tags carrying values,
// attributes and child nodes, and comments.
package ast

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/KimNorgaard/go-sdl/literal"
)

// Node is a child of a Tag: either a *Tag or a *Comment.
type Node interface {
	// Parent returns the tag holding the node, or nil when it is detached.
	Parent() *Tag
	String() string
	setParent(*Tag)
}

// Tag is a node of the document tree. A tag without a parent is the root of
// its tree; the root of a parsed document has no name and only holds
// children.
//
// The parent pointer does not own anything; children are owned by the
// slice of their parent.
type Tag struct {
	name      string
	values    []literal.Literal
	attrNames []string
	attrs     map[string]literal.Literal
	children  []Node
	parent    *Tag
}

// NewRoot returns an empty, nameless container tag.
func NewRoot() *Tag {
	return &Tag{}
}

// NewTag returns a detached tag. Values are converted with
// literal.FromNative; literals are used as they are.
func NewTag(name string, values ...any) (*Tag, error) {
	t := &Tag{}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	if err := t.AddNativeValues(values...); err != nil {
		return nil, err
	}
	return t, nil
}

// Name returns the full name of t, including any namespace.
func (t *Tag) Name() string { return t.name }

// SetName renames t. An invalid name fails with an InvalidIdentifier error
// and leaves the previous name in place.
func (t *Tag) SetName(name string) error {
	if !IsValidIdentifier(name) {
		return errors.NewInvalidIdentifier(name, 0)
	}
	t.name = name
	return nil
}

// Namespace returns the part of the name before the colon, if any.
func (t *Tag) Namespace() string {
	ns, _, found := strings.Cut(t.name, ":")
	if !found {
		return ""
	}
	return ns
}

// LocalName returns the name without its namespace.
func (t *Tag) LocalName() string {
	_, local, found := strings.Cut(t.name, ":")
	if !found {
		return t.name
	}
	return local
}

// IsAnonymous reports whether t was introduced by a value rather than a
// name.
func (t *Tag) IsAnonymous() bool { return t.name == ContentName }

// ElideName reports whether the name of t is left out when t is encoded.
// Only anonymous tags whose first value cannot be read back as a tag name
// are written without their name.
func (t *Tag) ElideName() bool {
	if !t.IsAnonymous() || len(t.values) == 0 {
		return false
	}
	return !IsValidIdentifier(t.values[0].String())
}

// IsRoot reports whether t has no parent.
func (t *Tag) IsRoot() bool { return t.parent == nil }

// Parent returns the tag holding t, or nil.
func (t *Tag) Parent() *Tag { return t.parent }

func (t *Tag) setParent(p *Tag) { t.parent = p }

// Root returns the topmost ancestor of t.
func (t *Tag) Root() *Tag {
	r := t
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Values returns a copy of the values of t.
func (t *Tag) Values() []literal.Literal {
	return append([]literal.Literal(nil), t.values...)
}

// Value returns the first value of t, or nil.
func (t *Tag) Value() literal.Literal {
	if len(t.values) == 0 {
		return nil
	}
	return t.values[0]
}

// AddValue appends values.
func (t *Tag) AddValue(values ...literal.Literal) {
	t.values = append(t.values, values...)
}

// AddNativeValues converts each of values with literal.FromNative and
// appends them. Nothing is appended when a conversion fails.
func (t *Tag) AddNativeValues(values ...any) error {
	lits := make([]literal.Literal, 0, len(values))
	for _, v := range values {
		l, err := literal.FromNative(v)
		if err != nil {
			return err
		}
		lits = append(lits, l)
	}
	t.values = append(t.values, lits...)
	return nil
}

// SetValue replaces all values of t with l.
func (t *Tag) SetValue(l literal.Literal) {
	t.values = []literal.Literal{l}
}

// SetValues replaces all values of t.
func (t *Tag) SetValues(values ...literal.Literal) {
	t.values = append([]literal.Literal(nil), values...)
}

// SetValueAt replaces the value at index i.
func (t *Tag) SetValueAt(i int, l literal.Literal) error {
	if i < 0 || i >= len(t.values) {
		return fmt.Errorf("sdl: value index %d out of range for tag %q with %d values", i, t.name, len(t.values))
	}
	t.values[i] = l
	return nil
}

// SetNativeValue replaces all values of t with the default literal for v.
func (t *Tag) SetNativeValue(v any) error {
	l, err := literal.FromNative(v)
	if err != nil {
		return err
	}
	t.SetValue(l)
	return nil
}

// ReplaceValueAt replaces the value at index i with v, keeping the kind of
// the current value.
func (t *Tag) ReplaceValueAt(i int, v any) error {
	if i < 0 || i >= len(t.values) {
		return fmt.Errorf("sdl: value index %d out of range for tag %q with %d values", i, t.name, len(t.values))
	}
	l, err := literal.Replace(t.values[i], v)
	if err != nil {
		return err
	}
	t.values[i] = l
	return nil
}

// NativeValues returns the Go values of all values of t.
func (t *Tag) NativeValues() []any {
	out := make([]any, len(t.values))
	for i, v := range t.values {
		out[i] = v.Value()
	}
	return out
}

// ScanValues assigns the values of t, in order, to the Go values the
// pointers in dst point to. Extra pointers are left untouched.
func (t *Tag) ScanValues(dst ...any) error {
	for i, d := range dst {
		if i >= len(t.values) {
			break
		}
		if err := literal.Assign(t.values[i], d); err != nil {
			return fmt.Errorf("value %d of %q: %w", i, t.name, err)
		}
	}
	return nil
}

// Attribute returns the attribute called name, or nil.
func (t *Tag) Attribute(name string) literal.Literal {
	return t.attrs[name]
}

// HasAttribute reports whether t has an attribute called name.
func (t *Tag) HasAttribute(name string) bool {
	_, ok := t.attrs[name]
	return ok
}

// SetAttribute sets the attribute called name. New attributes are kept in
// insertion order; replacing one keeps its position.
func (t *Tag) SetAttribute(name string, l literal.Literal) error {
	if !IsValidIdentifier(name) {
		return errors.NewInvalidIdentifier(name, 0)
	}
	if t.attrs == nil {
		t.attrs = make(map[string]literal.Literal)
	}
	if _, ok := t.attrs[name]; !ok {
		t.attrNames = append(t.attrNames, name)
	}
	t.attrs[name] = l
	return nil
}

// SetNativeAttribute sets the attribute called name to the default literal
// for v.
func (t *Tag) SetNativeAttribute(name string, v any) error {
	l, err := literal.FromNative(v)
	if err != nil {
		return err
	}
	return t.SetAttribute(name, l)
}

// RemoveAttribute deletes the attribute called name and reports whether it
// existed.
func (t *Tag) RemoveAttribute(name string) bool {
	if _, ok := t.attrs[name]; !ok {
		return false
	}
	delete(t.attrs, name)
	for i, n := range t.attrNames {
		if n == name {
			t.attrNames = append(t.attrNames[:i], t.attrNames[i+1:]...)
			break
		}
	}
	return true
}

// AttributeNames returns the attribute names in insertion order.
func (t *Tag) AttributeNames() []string {
	return append([]string(nil), t.attrNames...)
}

// NativeAttributes returns the Go values of all attributes.
func (t *Tag) NativeAttributes() map[string]any {
	out := make(map[string]any, len(t.attrs))
	for name, l := range t.attrs {
		out[name] = l.Value()
	}
	return out
}

// Children returns a copy of the child nodes, comments included.
func (t *Tag) Children() []Node {
	return append([]Node(nil), t.children...)
}

// Tags returns the child tags, skipping comments.
func (t *Tag) Tags() []*Tag {
	var out []*Tag
	for _, n := range t.children {
		if c, ok := n.(*Tag); ok {
			out = append(out, c)
		}
	}
	return out
}

// HasChildren reports whether t holds any child node.
func (t *Tag) HasChildren() bool { return len(t.children) > 0 }

// AddChild appends n, detaching it from its previous parent first. A tag
// cannot become a child of itself or of one of its descendants.
func (t *Tag) AddChild(n Node) error {
	if c, ok := n.(*Tag); ok {
		for a := t; a != nil; a = a.parent {
			if a == c {
				return errors.NewStructural(0, "tag %q cannot be a child of itself or its descendants", c.name)
			}
		}
	}
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
	n.setParent(t)
	t.children = append(t.children, n)
	return nil
}

// CreateChild creates a tag with NewTag and appends it to t.
func (t *Tag) CreateChild(name string, values ...any) (*Tag, error) {
	c, err := NewTag(name, values...)
	if err != nil {
		return nil, err
	}
	c.parent = t
	t.children = append(t.children, c)
	return c, nil
}

// AddComment appends a comment to t. A comment added directly after
// another one merges with it when the tree is encoded and parsed again.
func (t *Tag) AddComment(text string, style CommentStyle) *Comment {
	c := NewComment(text, style)
	c.parent = t
	t.children = append(t.children, c)
	return c
}

// RemoveChild removes n from t and clears its parent. It reports whether n
// was a child of t.
func (t *Tag) RemoveChild(n Node) bool {
	for i, c := range t.children {
		if c == n {
			t.children = append(t.children[:i], t.children[i+1:]...)
			n.setParent(nil)
			return true
		}
	}
	return false
}

// ChildrenByName returns the child tags called name.
func (t *Tag) ChildrenByName(name string) []*Tag {
	var out []*Tag
	for _, c := range t.Tags() {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first child tag called name, or nil.
func (t *Tag) Child(name string) *Tag {
	for _, c := range t.Tags() {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Walk calls fn for t and every descendant tag, depth first, until fn
// returns false.
func (t *Tag) Walk(fn func(*Tag) bool) bool {
	if !fn(t) {
		return false
	}
	for _, c := range t.Tags() {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// String returns the first line of the encoding of t: its name, values and
// attributes.
func (t *Tag) String() string {
	var parts []string
	if t.name != "" && !t.ElideName() {
		parts = append(parts, t.name)
	}
	for i, v := range t.values {
		if ts, ok := v.(literal.TimeSpan); ok && i > 0 {
			parts = append(parts, ts.StringAfter(t.values[i-1]))
			continue
		}
		parts = append(parts, v.String())
	}
	for _, name := range t.attrNames {
		parts = append(parts, name+"="+t.attrs[name].String())
	}
	return strings.Join(parts, " ")
}
