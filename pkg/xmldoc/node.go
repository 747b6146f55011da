package xmldoc

import (
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
)

// Category names the set of nodes a collection accepts.
type Category string

// Abstract categories. Concrete nodes also answer to their own category,
// e.g. an element built with category "Link" is in "Link" and ElementItem.
const (
	AnyItem     Category = "XMLItem"
	DocItem     Category = "DocItem"
	ElementItem Category = "ElementItem"
)

// Kind identifies the concrete node family.
type Kind int

const (
	KindElement Kind = iota
	KindTimestamp
	KindComment
	KindPI
	KindMarkupDecl
	KindCollection
	KindDeclaration
	KindDocument
)

var kindNames = map[Kind]string{
	KindElement:     "Element",
	KindTimestamp:   "Timestamp",
	KindComment:     "Comment",
	KindPI:          "PI",
	KindMarkupDecl:  "MarkupDecl",
	KindCollection:  "Collection",
	KindDeclaration: "XMLDeclaration",
	KindDocument:    "Document",
}

func (k Kind) String() string { return kindNames[k] }

// Node is anything that can sit in a document tree.
type Node interface {
	// Render returns the node as markup, indentation included and without a
	// trailing newline, or "" when the node is suppressed.
	Render(f format.Controller) string
	// IsEmpty reports whether the node has nothing to render.
	IsEmpty() bool
	// Parent returns the owning node, or nil for a detached node.
	Parent() Node
	// Name returns the slot name the node is bound under, if any.
	Name() string
	Kind() Kind
	// Category returns the node's own category.
	Category() Category
	// Is reports whether the node belongs to category c.
	Is(c Category) bool
	// IsElement reports whether the node counts as a nesting level.
	IsElement() bool

	core() *item
}

// item carries the tree links shared by every node.
type item struct {
	parent Node
	name   string
}

func (i *item) Parent() Node { return i.parent }
func (i *item) Name() string { return i.name }
func (i *item) core() *item  { return i }

// attach links n under parent. A node has one owner at a time and a node
// may not be placed under itself or one of its descendants.
func attach(parent Node, n Node, name string) error {
	if n == nil {
		return errors.New(errors.ErrTypeMismatch, "cannot attach a nil node")
	}
	c := n.core()
	if c.parent != nil {
		return errors.Newf(errors.ErrAlreadyAttached, "%s is already attached to %s", DisplayName(n), DisplayName(c.parent)).
			WithDetail("name", name)
	}
	for p := parent; p != nil; p = p.Parent() {
		if p.core() == c {
			return errors.Newf(errors.ErrStructuralViolation, "cannot attach %s inside itself", DisplayName(n)).
				WithDetail("name", name)
		}
	}
	c.parent = parent
	if name != "" {
		c.name = name
	}
	return nil
}

func detach(n Node) {
	n.core().parent = nil
}

func sameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.core() == b.core()
}

// Level returns how many element ancestors n has. The root element and
// document-level items are level 0.
func Level(n Node) int {
	level := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.IsElement() {
			level++
		}
	}
	return level
}

// DisplayName returns the node's slot name, or a generated one for
// unnamed nodes.
func DisplayName(n Node) string {
	if name := n.Name(); name != "" {
		return name
	}
	return "unnamed_instance_of_" + n.Kind().String()
}

// String renders n at level 0 in normal mode.
func String(n Node) string {
	return n.Render(format.NormalAt(0))
}
