package xmldoc

import (
	"fmt"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/logging"
)

// Placeholder is the comment a document holds until a root is set.
const Placeholder = "no root element yet"

// Document slot names accepted by Assign.
const (
	SlotDeclaration = "declaration"
	SlotAbove       = "above"
	SlotRoot        = "root"
	SlotBelow       = "below"
)

// Document is an XML document with a fixed shape: the declaration, zero or
// more document-level items, exactly one root, zero or more document-level
// items.
type Document struct {
	item
	decl      *Declaration
	above     *Collection
	below     *Collection
	root      Node
	items     []Node
	rootIndex int
	rootSet   bool
}

// NewDocument returns a document whose root is a placeholder comment.
func NewDocument() *Document {
	d := &Document{rootIndex: -1}
	d.decl = NewDeclaration()
	d.above = NewCollection(DocItem)
	d.below = NewCollection(DocItem)

	d.push(d.decl, SlotDeclaration)
	d.push(d.above, SlotAbove)
	if err := d.setRoot(NewComment(Placeholder)); err != nil {
		panic(err)
	}
	d.rootSet = false
	d.push(d.below, SlotBelow)
	return d
}

// NewDocumentWithRoot returns a document with root already set.
func NewDocumentWithRoot(root Node) (*Document, error) {
	d := NewDocument()
	if err := d.SetRoot(root); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) push(n Node, name string) {
	if err := attach(d, n, name); err != nil {
		panic(err)
	}
	d.items = append(d.items, n)
}

func (d *Document) Kind() Kind           { return KindDocument }
func (d *Document) Category() Category   { return "Document" }
func (d *Document) IsElement() bool      { return false }
func (d *Document) IsEmpty() bool        { return false }
func (d *Document) Is(cat Category) bool { return cat == AnyItem || cat == d.Category() }

// Declaration returns the <?xml?> declaration.
func (d *Document) Declaration() *Declaration { return d.decl }

// Above returns the document-level items rendered before the root.
func (d *Document) Above() *Collection { return d.above }

// Below returns the document-level items rendered after the root.
func (d *Document) Below() *Collection { return d.below }

// Root returns the root node.
func (d *Document) Root() Node { return d.root }

// HasRoot reports whether a caller has replaced the placeholder root.
func (d *Document) HasRoot() bool { return d.rootSet }

// RootIndex returns the root's position in the top-level sequence.
func (d *Document) RootIndex() int { return d.rootIndex }

// Items returns the top-level sequence: declaration, leading items, root,
// trailing items.
func (d *Document) Items() []Node {
	return append([]Node(nil), d.items...)
}

// SetRoot replaces the root. Any element or comment is accepted; the new
// root takes the old one's place in the top-level sequence.
func (d *Document) SetRoot(n Node) error {
	logger := logging.GetLogger("xmldoc")
	if err := d.setRoot(n); err != nil {
		logger.Debug().Err(err).Msg("Root replacement rejected")
		return err
	}
	d.rootSet = true
	logger.Trace().
		Str("kind", n.Kind().String()).
		Str("category", string(n.Category())).
		Int("index", d.rootIndex).
		Msg("Root element set")
	return nil
}

func (d *Document) setRoot(n Node) error {
	if n == nil {
		return errors.New(errors.ErrUnsupportedRoot, "root element must not be nil")
	}
	if !n.Is(ElementItem) {
		return errors.Newf(errors.ErrUnsupportedRoot, "only an element item can be the root, got %s", n.Kind()).
			WithDetail("kind", n.Kind().String())
	}
	if sameNode(n, d.root) {
		return nil
	}
	if err := attach(d, n, SlotRoot); err != nil {
		return err
	}
	if d.rootIndex < 0 {
		d.rootIndex = len(d.items)
		d.items = append(d.items, n)
	} else {
		detach(d.root)
		d.items[d.rootIndex] = n
	}
	d.root = n
	return nil
}

// Assign applies the mutation protocol to the document's slots. Only the
// root can be reassigned; the other slots are fixed by the document shape.
func (d *Document) Assign(slot string, value any) error {
	switch slot {
	case SlotRoot:
		n, ok := value.(Node)
		if !ok {
			return errors.Newf(errors.ErrUnsupportedRoot, "only an element item can be the root, got %T", value).
				WithDetail("value_type", fmt.Sprintf("%T", value))
		}
		return d.SetRoot(n)
	case SlotDeclaration, SlotAbove, SlotBelow:
		return errors.Newf(errors.ErrStructuralViolation, "document slot %q cannot be replaced", slot).
			WithDetail("slot", slot)
	}
	return errors.Newf(errors.ErrStructuralViolation, "document has no slot %q", slot).
		WithDetail("slot", slot)
}

// Render renders the whole document.
func (d *Document) Render(f format.Controller) string {
	return joinRendered(f, d.items)
}

// String renders the document at level 0 in normal mode.
func (d *Document) String() string {
	return d.Render(format.NormalAt(0))
}

// Validate checks the document's structural invariants and that its
// normal-mode rendering is well-formed XML.
func (d *Document) Validate() error {
	if d.Parent() != nil {
		return errors.New(errors.ErrInternal, "a document never has a parent")
	}
	if d.root == nil || !sameNode(d.root.Parent(), d) {
		return errors.New(errors.ErrInternal, "document root is not attached to the document")
	}
	if d.rootIndex < 0 || !sameNode(d.items[d.rootIndex], d.root) {
		return errors.New(errors.ErrInternal, "document root is out of place")
	}
	_, err := Check(d.String())
	return err
}
