package manifest

import (
	"fmt"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/atom"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
)

// Validate checks the fields Build cannot make sense of without
// rendering anything: required names, hrefs and terms, and text types.
func (m *Manifest) Validate() error {
	if err := checkType("title_type", m.TitleType); err != nil {
		return err
	}
	if err := checkPeople("authors", m.Authors); err != nil {
		return err
	}
	if err := checkPeople("contributors", m.Contributors); err != nil {
		return err
	}
	if err := checkLinks("links", m.Links); err != nil {
		return err
	}
	if err := checkCategories("categories", m.Categories); err != nil {
		return err
	}
	if m.Generator != nil && m.Generator.Name == "" && (m.Generator.URI != "" || m.Generator.Version != "") {
		return invalid("generator.name", "generator needs a name")
	}

	for i, e := range m.Entries {
		prefix := fmt.Sprintf("entries[%d]", i)
		if err := checkType(prefix+".title_type", e.TitleType); err != nil {
			return err
		}
		if err := checkType(prefix+".summary_type", e.SummaryType); err != nil {
			return err
		}
		if err := checkType(prefix+".content_type", e.ContentType); err != nil {
			return err
		}
		if err := checkPeople(prefix+".authors", e.Authors); err != nil {
			return err
		}
		if err := checkPeople(prefix+".contributors", e.Contributors); err != nil {
			return err
		}
		if err := checkLinks(prefix+".links", e.Links); err != nil {
			return err
		}
		if err := checkCategories(prefix+".categories", e.Categories); err != nil {
			return err
		}
	}
	return nil
}

func checkType(field, typ string) error {
	switch typ {
	case "", atom.TypeText, atom.TypeHTML, atom.TypeXHTML:
		return nil
	}
	return invalid(field, fmt.Sprintf("unknown text type %q (want text, html or xhtml)", typ))
}

func checkPeople(field string, people []Person) error {
	for i, p := range people {
		if p.Name == "" {
			return invalid(fmt.Sprintf("%s[%d].name", field, i), "a person needs a name")
		}
	}
	return nil
}

func checkLinks(field string, links []Link) error {
	for i, l := range links {
		if l.Href == "" {
			return invalid(fmt.Sprintf("%s[%d].href", field, i), "a link needs an href")
		}
	}
	return nil
}

func checkCategories(field string, cats []Category) error {
	for i, c := range cats {
		if c.Term == "" {
			return invalid(fmt.Sprintf("%s[%d].term", field, i), "a category needs a term")
		}
	}
	return nil
}

func invalid(field, msg string) error {
	return errors.New(errors.ErrManifestInvalid, field+": "+msg).
		WithDetail("field", field)
}
