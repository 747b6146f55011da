package atom

import (
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/xmldoc"
)

// Person is an Atom person construct: <author> or <contributor> holding
// name, email and uri.
type Person struct {
	*xmldoc.Element
}

// NewAuthor returns an <author> with the given name.
func NewAuthor(name string) *Person {
	return newPerson("author", CatAuthor, name)
}

// NewContributor returns a <contributor> with the given name.
func NewContributor(name string) *Person {
	return newPerson("contributor", CatContributor, name)
}

func newPerson(tag string, cat xmldoc.Category, name string) *Person {
	e := xmldoc.NewElement(tag, xmldoc.ShapeNest, xmldoc.WithCategory(cat))
	e.MustAssign("name", NewName(name))
	e.MustAssign("email", NewEmail(""))
	e.MustAssign("uri", NewURI(""))
	return &Person{Element: e.Lock()}
}

func (p *Person) PersonName() *xmldoc.Element { return slotElement(p.Element, "name") }
func (p *Person) Email() *xmldoc.Element      { return slotElement(p.Element, "email") }
func (p *Person) URI() *xmldoc.Element        { return slotElement(p.Element, "uri") }
