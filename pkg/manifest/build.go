package manifest

import (
	"fmt"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/atom"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/logging"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/timestamp"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/xmldoc"
)

// BuildOptions controls how a manifest becomes a document.
type BuildOptions struct {
	// Offset is the UTC offset timestamps render with. Empty means "Z".
	Offset string
	// Now seeds the sequence that fills in missing updated values. Zero
	// means the current time.
	Now float64
	// Generator is used when the manifest names none. An empty name means
	// no <generator> element.
	Generator Generator
}

// assigner is implemented by every Atom element.
type assigner interface {
	Assign(slot string, value any) error
}

// Build assembles the document described by m. Feed and entries missing an
// updated value take successive instants from a sequence seeded at
// opts.Now, feed first.
func Build(m *Manifest, opts BuildOptions) (*xmldoc.Document, error) {
	logger := logging.GetLogger("manifest")
	if err := m.Validate(); err != nil {
		return nil, err
	}

	seq := timestamp.NewTimeSeq(opts.Now)
	offset := opts.Offset
	if offset == "" {
		offset = timestamp.UTC
	}
	if !timestamp.ValidOffset(offset) {
		return nil, errors.Newf(errors.ErrInvalidTimestamp, "invalid UTC offset %q", offset).
			WithDetail("offset", offset)
	}

	feed := atom.NewFeed(atom.WithOffset(offset))
	if err := fillFeed(feed, m, seq, opts.Generator); err != nil {
		return nil, err
	}
	for i := range m.Entries {
		entry, err := buildEntry(&m.Entries[i], fmt.Sprintf("entries[%d]", i), offset, seq)
		if err != nil {
			return nil, err
		}
		if err := feed.AddEntry(entry); err != nil {
			return nil, err
		}
	}

	doc, err := atom.NewDocument(feed)
	if err != nil {
		return nil, err
	}
	for _, c := range m.Comments.Above {
		if err := doc.Above().Append(xmldoc.NewComment(c)); err != nil {
			return nil, err
		}
	}
	for _, c := range m.Comments.Below {
		if err := doc.Below().Append(xmldoc.NewComment(c)); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Int("entries", feed.Entries().Len()).
		Str("offset", offset).
		Msg("Feed document built")
	return doc, nil
}

func fillFeed(feed *atom.Feed, m *Manifest, seq *timestamp.TimeSeq, fallback Generator) error {
	if err := setText(feed, "title", m.Title, m.TitleType, "title"); err != nil {
		return err
	}
	if err := setPlain(feed, "id", m.ID, "id"); err != nil {
		return err
	}
	if err := setUpdated(feed, m.Updated, "updated", seq); err != nil {
		return err
	}
	if err := setText(feed, "subtitle", m.Subtitle, "", "subtitle"); err != nil {
		return err
	}
	if err := setText(feed, "rights", m.Rights, "", "rights"); err != nil {
		return err
	}
	if err := setPlain(feed, "icon", m.Icon, "icon"); err != nil {
		return err
	}
	if err := setPlain(feed, "logo", m.Logo, "logo"); err != nil {
		return err
	}

	gen := fallback
	if m.Generator != nil {
		gen = *m.Generator
	}
	if gen.Name != "" {
		g := feed.Generator()
		if err := g.SetText(atom.EscapeHTML(gen.Name)); err != nil {
			return atField(err, "generator")
		}
		if err := setAttrs(g, "generator", atom.AttrURI, gen.URI, atom.AttrVersion, gen.Version); err != nil {
			return err
		}
	}

	if err := addPeople(feed.Authors(), atom.NewAuthor, m.Authors, "authors"); err != nil {
		return err
	}
	if err := addPeople(feed.Contributors(), atom.NewContributor, m.Contributors, "contributors"); err != nil {
		return err
	}
	if err := addLinks(feed.Links(), m.Links, "links"); err != nil {
		return err
	}
	return addCategories(feed.Categories(), m.Categories, "categories")
}

func buildEntry(e *Entry, field, offset string, seq *timestamp.TimeSeq) (*atom.Entry, error) {
	entry := atom.NewEntry(atom.WithOffset(offset))

	steps := []func() error{
		func() error { return setText(entry, "title", e.Title, e.TitleType, field+".title") },
		func() error { return setPlain(entry, "id", e.ID, field+".id") },
		func() error { return setUpdated(entry, e.Updated, field+".updated", seq) },
		func() error { return setTimestamp(entry, "published", e.Published, field+".published") },
		func() error { return setText(entry, "summary", e.Summary, e.SummaryType, field+".summary") },
		func() error { return setText(entry, "content", e.Content, e.ContentType, field+".content") },
		func() error { return setText(entry, "rights", e.Rights, "", field+".rights") },
		func() error { return addPeople(entry.Authors(), atom.NewAuthor, e.Authors, field+".authors") },
		func() error {
			return addPeople(entry.Contributors(), atom.NewContributor, e.Contributors, field+".contributors")
		},
		func() error { return addLinks(entry.Links(), e.Links, field+".links") },
		func() error { return addCategories(entry.Categories(), e.Categories, field+".categories") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

// setText sets a text construct. Values of type xhtml are inline markup and
// go in as is; everything else is escaped.
func setText(el assigner, slot, value, typ, field string) error {
	if value == "" {
		return nil
	}
	text := value
	if typ != atom.TypeXHTML {
		text = atom.EscapeHTML(value)
	}
	if err := el.Assign(slot, text); err != nil {
		return atField(err, field)
	}
	if typ == "" {
		return nil
	}
	target, ok := slotOf(el, slot).(*xmldoc.Element)
	if !ok {
		return nil
	}
	return atField(target.SetAttr(atom.AttrType, typ), field)
}

func setPlain(el assigner, slot, value, field string) error {
	if value == "" {
		return nil
	}
	return atField(el.Assign(slot, atom.EscapeHTML(value)), field)
}

func setTimestamp(el assigner, slot, value, field string) error {
	if value == "" {
		return nil
	}
	return atField(el.Assign(slot, value), field)
}

func setUpdated(el assigner, value, field string, seq *timestamp.TimeSeq) error {
	if value == "" {
		return atField(el.Assign("updated", seq.Next()), field)
	}
	return setTimestamp(el, "updated", value, field)
}

func addPeople(list *xmldoc.List[*atom.Person], newPerson func(string) *atom.Person, people []Person, field string) error {
	for i, p := range people {
		at := fmt.Sprintf("%s[%d]", field, i)
		person := newPerson(atom.EscapeHTML(p.Name))
		if err := setPlain(person, "email", p.Email, at+".email"); err != nil {
			return err
		}
		if err := setPlain(person, "uri", p.URI, at+".uri"); err != nil {
			return err
		}
		if err := list.Append(person); err != nil {
			return atField(err, at)
		}
	}
	return nil
}

func addLinks(list *xmldoc.List[*xmldoc.Element], links []Link, field string) error {
	for i, l := range links {
		at := fmt.Sprintf("%s[%d]", field, i)
		link := atom.NewLink(atom.EscapeAttr(l.Href))
		err := setAttrs(link, at,
			atom.AttrRel, l.Rel,
			atom.AttrType, l.Type,
			atom.AttrHreflang, l.Hreflang,
			atom.AttrTitle, l.Title,
			atom.AttrLength, l.Length,
		)
		if err != nil {
			return err
		}
		if err := list.Append(link); err != nil {
			return atField(err, at)
		}
	}
	return nil
}

func addCategories(list *xmldoc.List[*xmldoc.Element], cats []Category, field string) error {
	for i, c := range cats {
		at := fmt.Sprintf("%s[%d]", field, i)
		cat := atom.NewCategory(atom.EscapeAttr(c.Term))
		if err := setAttrs(cat, at, atom.AttrScheme, c.Scheme, atom.AttrLabel, c.Label); err != nil {
			return err
		}
		if err := list.Append(cat); err != nil {
			return atField(err, at)
		}
	}
	return nil
}

// setAttrs sets name/value pairs, skipping empty values.
func setAttrs(el *xmldoc.Element, field string, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		if err := el.SetAttr(pairs[i], atom.EscapeAttr(pairs[i+1])); err != nil {
			return atField(err, field+"."+pairs[i])
		}
	}
	return nil
}

func slotOf(el assigner, slot string) xmldoc.Node {
	if s, ok := el.(interface{ Slot(string) xmldoc.Node }); ok {
		return s.Slot(slot)
	}
	return nil
}

// atField records the manifest field an error came from.
func atField(err error, field string) error {
	if err == nil {
		return nil
	}
	if de, ok := err.(*errors.DocError); ok {
		return de.WithDetail("field", field)
	}
	return errors.Wrapf(err, errors.ErrManifestInvalid, "%s", field).WithDetail("field", field)
}
