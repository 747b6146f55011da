package xmldoc

import (
	"fmt"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/logging"
)

// Collection is an ordered run of zero or more nodes of one category. It
// has no tag of its own: it renders as its members.
type Collection struct {
	item
	contains Category
	members  []Node
}

// NewCollection returns an empty collection accepting category c.
func NewCollection(c Category) *Collection {
	return &Collection{contains: c}
}

func (c *Collection) Kind() Kind           { return KindCollection }
func (c *Collection) Category() Category   { return "Collection" }
func (c *Collection) IsElement() bool      { return false }
func (c *Collection) Is(cat Category) bool { return cat == AnyItem || cat == c.Category() }

// Contains returns the category members must belong to.
func (c *Collection) Contains() Category { return c.contains }

func (c *Collection) Len() int { return len(c.members) }

// At returns the i-th member. It panics when i is out of range.
func (c *Collection) At(i int) Node { return c.members[i] }

// Members returns the members in order.
func (c *Collection) Members() []Node {
	return append([]Node(nil), c.members...)
}

// Append adds n at the end. A node outside the collection's category is
// rejected and the collection is left unchanged.
func (c *Collection) Append(n Node) error {
	if err := c.admit(n); err != nil {
		return err
	}
	if !n.IsEmpty() {
		if err := guardFillFrom(c, n); err != nil {
			return err
		}
	}
	if err := attach(c, n, ""); err != nil {
		return err
	}
	c.members = append(c.members, n)
	return nil
}

// Set replaces the i-th member with n.
func (c *Collection) Set(i int, n Node) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	if err := c.admit(n); err != nil {
		return err
	}
	if sameNode(c.members[i], n) {
		return nil
	}
	if !n.IsEmpty() {
		if err := guardFillFrom(c, n); err != nil {
			return err
		}
	}
	if err := attach(c, n, ""); err != nil {
		return err
	}
	detach(c.members[i])
	c.members[i] = n
	return nil
}

// RemoveAt detaches and drops the i-th member.
func (c *Collection) RemoveAt(i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	detach(c.members[i])
	c.members = append(c.members[:i], c.members[i+1:]...)
	return nil
}

// IsEmpty reports whether every member is empty.
func (c *Collection) IsEmpty() bool {
	return !anyNonEmpty(c.members)
}

// Describe returns "collection of <category> with <n> element(s)".
func (c *Collection) Describe() string {
	noun := "elements"
	if len(c.members) == 1 {
		noun = "element"
	}
	return fmt.Sprintf("collection of %s with %d %s", c.contains, len(c.members), noun)
}

// Render renders the non-empty members joined by newlines. In verbose mode a
// describing comment comes first and the members go one level deeper.
func (c *Collection) Render(f format.Controller) string {
	if len(c.members) == 0 && !f.ShouldRenderEmpty() {
		return ""
	}
	if !f.IsVerbose() {
		return joinRendered(f, c.members)
	}

	header := f.Indent() + "<!-- " + c.Describe() + " -->"
	if body := joinRendered(f.Deeper(1), c.members); body != "" {
		return header + "\n" + body
	}
	return header
}

func (c *Collection) admit(n Node) error {
	if n == nil {
		return errors.Newf(errors.ErrWrongCategory, "cannot insert nil into %s", c.Describe())
	}
	if !n.Is(c.contains) {
		logger := logging.GetLogger("xmldoc")
		logger.Debug().
			Str("kind", n.Kind().String()).
			Str("category", string(n.Category())).
			Str("contains", string(c.contains)).
			Msg("Attempted to insert into collection of another category")
		return errors.Newf(errors.ErrWrongCategory, "%s %s is the wrong type for a collection of %s",
			n.Kind(), n.Category(), c.contains).
			WithDetail("category", string(n.Category())).
			WithDetail("contains", string(c.contains))
	}
	return nil
}

func (c *Collection) checkIndex(i int) error {
	if i < 0 || i >= len(c.members) {
		return errors.Newf(errors.ErrInvalidInput, "index %d out of range for %s", i, c.Describe()).
			WithDetail("index", i)
	}
	return nil
}
