package xmldoc

import (
	"fmt"
	"strings"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
)

// Shape decides what an element may contain.
type Shape int

const (
	// ShapeText elements hold an optional text payload and never children.
	ShapeText Shape = iota
	// ShapeNest elements hold children and never text.
	ShapeNest
	// ShapeMixed elements hold text while they have no non-empty child,
	// children while they have no text, and never both.
	ShapeMixed
)

func (s Shape) String() string {
	switch s {
	case ShapeText:
		return "text"
	case ShapeNest:
		return "nest"
	case ShapeMixed:
		return "mixed"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Element is a tagged markup construct with attributes and either text or
// child nodes, as its Shape allows.
//
// An element is open while it is being constructed: Assign may bind new named
// slots. Lock closes it; afterwards Assign only updates existing slots.
type Element struct {
	item
	tag      string
	category Category
	shape    Shape
	attrs    Attrs
	text     string
	children []Node
	slots    map[string]Node
	locked   bool
}

// Option configures an element at construction.
type Option func(*Element)

// WithCategory sets the element's own category. The default is the tag name.
func WithCategory(c Category) Option {
	return func(e *Element) { e.category = c }
}

// WithPriority declares the attribute render order.
func WithPriority(names ...string) Option {
	return func(e *Element) { e.attrs.priority = append([]string(nil), names...) }
}

// WithAttr sets an initial attribute. Empty values are skipped. It panics on
// an invalid attribute name.
func WithAttr(name, value string) Option {
	return func(e *Element) {
		if value == "" {
			return
		}
		if err := e.attrs.Set(name, value); err != nil {
			panic(err)
		}
	}
}

// WithText sets the initial text payload.
func WithText(text string) Option {
	return func(e *Element) { e.text = text }
}

// NewElement returns an open element. Call Lock once its slots are bound.
func NewElement(tag string, shape Shape, opts ...Option) *Element {
	e := &Element{
		tag:      tag,
		category: Category(tag),
		shape:    shape,
		attrs:    newAttrs(nil),
		slots:    make(map[string]Node),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.shape == ShapeNest {
		e.text = ""
	}
	return e
}

func (e *Element) Tag() string        { return e.tag }
func (e *Element) Shape() Shape       { return e.shape }
func (e *Element) Kind() Kind         { return KindElement }
func (e *Element) Category() Category { return e.category }
func (e *Element) IsElement() bool    { return true }
func (e *Element) Locked() bool       { return e.locked }

// Is reports whether the element belongs to c.
func (e *Element) Is(c Category) bool {
	return c == AnyItem || c == ElementItem || c == e.category
}

// Lock closes the element to new slots and returns it.
func (e *Element) Lock() *Element {
	e.locked = true
	return e
}

// Attrs returns the element's attribute map.
func (e *Element) Attrs() *Attrs { return &e.attrs }

// SetAttr sets one attribute.
func (e *Element) SetAttr(name, value string) error {
	if e.IsEmpty() {
		if err := guardFill(e); err != nil {
			return err
		}
	}
	return e.attrs.Set(name, value)
}

// Attr returns an attribute value, or "".
func (e *Element) Attr(name string) string {
	return e.attrs.Value(name)
}

// Text returns the text payload.
func (e *Element) Text() string { return e.text }

// SetText replaces the text payload. Nesting elements have no text, and a
// mixed element that owns a non-empty child refuses text.
func (e *Element) SetText(text string) error {
	switch e.shape {
	case ShapeNest:
		return errors.Newf(errors.ErrStructuralViolation, "<%s> does not have text contents", e.tag).
			WithDetail("tag", e.tag)
	case ShapeMixed:
		if text != "" && anyNonEmpty(e.children) {
			return errors.Newf(errors.ErrStructuralViolation, "<%s> has nested elements so cannot take text", e.tag).
				WithDetail("tag", e.tag)
		}
	}
	if text != "" && e.IsEmpty() {
		if err := guardFill(e); err != nil {
			return err
		}
	}
	e.text = text
	return nil
}

// Children returns the child nodes in render order.
func (e *Element) Children() []Node {
	return append([]Node(nil), e.children...)
}

// Slot returns the node bound under name, or nil.
func (e *Element) Slot(name string) Node {
	return e.slots[name]
}

// SlotNames returns the bound slot names in child order.
func (e *Element) SlotNames() []string {
	names := make([]string, 0, len(e.slots))
	for _, c := range e.children {
		if name := c.Name(); name != "" && sameNode(e.slots[name], c) {
			names = append(names, name)
		}
	}
	return names
}

// HasContents reports whether the element has text or a non-empty child.
func (e *Element) HasContents() bool {
	return e.hasChildren() || e.hasText()
}

// IsEmpty reports whether the element has neither attributes nor contents.
func (e *Element) IsEmpty() bool {
	return e.attrs.Len() == 0 && !e.HasContents()
}

func (e *Element) hasChildren() bool {
	return anyNonEmpty(e.children)
}

func (e *Element) hasText() bool {
	return e.shape != ShapeNest && e.text != ""
}

// guardFill refuses to turn an empty node into a non-empty one when that
// would give a mixed element holding text a non-empty descendant.
func guardFill(n Node) error {
	return guardFillFrom(n.Parent(), n)
}

// guardFillFrom is guardFill for a node about to be placed under parent.
// Filling n makes every empty ancestor non-empty, up to and including the
// first ancestor that already had content.
func guardFillFrom(parent Node, n Node) error {
	for p := parent; p != nil; p = p.Parent() {
		if owner, ok := p.(*Element); ok && owner.shape == ShapeMixed && owner.text != "" {
			return errors.Newf(errors.ErrStructuralViolation, "<%s> has text contents so its children must stay empty", owner.tag).
				WithDetail("tag", owner.tag).
				WithDetail("child", DisplayName(n))
		}
		if !p.IsEmpty() {
			return nil
		}
	}
	return nil
}

// canNest reports whether a new child may be attached right now.
func (e *Element) canNest() error {
	switch {
	case e.shape == ShapeText:
		return errors.Newf(errors.ErrStructuralViolation, "<%s> cannot nest other elements", e.tag)
	case e.shape == ShapeMixed && e.text != "":
		return errors.Newf(errors.ErrStructuralViolation, "<%s> has text contents so cannot nest", e.tag)
	case e.locked:
		return errors.Newf(errors.ErrStructuralViolation, "<%s> is locked; no new slots can be added", e.tag)
	}
	return nil
}

// Render renders the element and, recursively, its children.
func (e *Element) Render(f format.Controller) string {
	children := e.hasChildren()
	return renderTag(f, tagShape{
		tag:         e.tag,
		attrs:       &e.attrs,
		hasContents: children || e.hasText(),
		multiline:   children || (e.hasText() && strings.Contains(e.text, "\n")),
		contents: func(f format.Controller) string {
			if children {
				return joinRendered(f, e.children)
			}
			return e.text
		},
	})
}

// StartTag renders only the start tag at f's indent.
func (e *Element) StartTag(f format.Controller) string {
	return f.Indent() + "<" + e.tag + e.attrs.render(f) + ">"
}

// EndTag renders only the end tag.
func (e *Element) EndTag() string {
	return "</" + e.tag + ">"
}

// CompactTag renders a self-closing tag with the element's attributes.
func (e *Element) CompactTag(f format.Controller) string {
	return f.Indent() + "<" + e.tag + e.attrs.render(f) + "/>"
}
