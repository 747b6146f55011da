package atom

import (
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/xmldoc"
)

// Default texts for freshly built feeds and entries, replaced by callers.
const (
	DefaultFeedTitle  = "Title of Feed Goes Here"
	DefaultFeedID     = "ID of Feed Goes Here"
	DefaultEntryTitle = "Title of Entry Goes Here"
	DefaultEntryID    = "ID of Entry Goes Here"
)

type options struct {
	offset string
}

// Option configures a feed, source or entry at construction.
type Option func(*options)

// WithOffset sets the UTC offset its timestamps render with.
func WithOffset(offset string) Option {
	return func(o *options) { o.offset = offset }
}

func collect(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// feedElement holds the slots <feed> and <source> share.
type feedElement struct {
	*xmldoc.Element
}

func newFeedElement(tag string, cat xmldoc.Category, o options) feedElement {
	e := xmldoc.NewElement(tag, xmldoc.ShapeNest, xmldoc.WithCategory(cat))
	e.MustAssign("title", NewTitle(""))
	e.MustAssign("id", NewID(""))
	e.MustAssign("updated", NewUpdated(0, o.offset))
	e.MustAssign("authors", xmldoc.NewCollection(CatAuthor))
	e.MustAssign("links", xmldoc.NewCollection(CatLink))

	e.MustAssign("subtitle", NewSubtitle(""))
	e.MustAssign("categories", xmldoc.NewCollection(CatCategory))
	e.MustAssign("contributors", xmldoc.NewCollection(CatContributor))
	e.MustAssign("generator", NewGenerator(""))
	e.MustAssign("icon", NewIcon(""))
	e.MustAssign("logo", NewLogo(""))
	e.MustAssign("rights", NewRights(""))
	return feedElement{Element: e}
}

func (f feedElement) Title() *xmldoc.Element     { return slotElement(f.Element, "title") }
func (f feedElement) ID() *xmldoc.Element        { return slotElement(f.Element, "id") }
func (f feedElement) Updated() *xmldoc.Timestamp { return slotTimestamp(f.Element, "updated") }
func (f feedElement) Subtitle() *xmldoc.Element  { return slotElement(f.Element, "subtitle") }
func (f feedElement) Generator() *xmldoc.Element { return slotElement(f.Element, "generator") }
func (f feedElement) Icon() *xmldoc.Element      { return slotElement(f.Element, "icon") }
func (f feedElement) Logo() *xmldoc.Element      { return slotElement(f.Element, "logo") }
func (f feedElement) Rights() *xmldoc.Element    { return slotElement(f.Element, "rights") }

func (f feedElement) Authors() *xmldoc.List[*Person]       { return slotList[*Person](f.Element, "authors") }
func (f feedElement) Contributors() *xmldoc.List[*Person]  { return slotList[*Person](f.Element, "contributors") }
func (f feedElement) Links() *xmldoc.List[*xmldoc.Element] { return slotList[*xmldoc.Element](f.Element, "links") }
func (f feedElement) Categories() *xmldoc.List[*xmldoc.Element] {
	return slotList[*xmldoc.Element](f.Element, "categories")
}

// Feed is the Atom <feed> root element.
type Feed struct {
	feedElement
}

// NewFeed returns a feed with placeholder title and id.
func NewFeed(opts ...Option) *Feed {
	f := newFeedElement("feed", CatFeed, collect(opts))
	f.MustAssign("entries", xmldoc.NewCollection(CatEntry))
	if err := f.SetAttr(AttrXMLNS, Namespace); err != nil {
		panic(err)
	}
	f.MustAssign("title", DefaultFeedTitle)
	f.MustAssign("id", DefaultFeedID)
	f.Lock()
	return &Feed{feedElement: f}
}

// Entries returns the feed's entries.
func (f *Feed) Entries() *xmldoc.List[*Entry] { return slotList[*Entry](f.Element, "entries") }

// AddEntry appends e to the feed's entries.
func (f *Feed) AddEntry(e *Entry) error { return f.Entries().Append(e) }

// Source is the <source> element of an entry copied from another feed.
type Source struct {
	feedElement
}

// NewSource returns an empty <source>.
func NewSource(opts ...Option) *Source {
	s := newFeedElement("source", CatSource, collect(opts))
	s.Lock()
	return &Source{feedElement: s}
}

// Entry is an Atom <entry>.
type Entry struct {
	*xmldoc.Element
}

// NewEntry returns an entry with placeholder title and id.
func NewEntry(opts ...Option) *Entry {
	o := collect(opts)
	e := xmldoc.NewElement("entry", xmldoc.ShapeNest, xmldoc.WithCategory(CatEntry))
	e.MustAssign("title", NewTitle(DefaultEntryTitle))
	e.MustAssign("id", NewID(DefaultEntryID))
	e.MustAssign("updated", NewUpdated(0, o.offset))
	e.MustAssign("authors", xmldoc.NewCollection(CatAuthor))
	e.MustAssign("links", xmldoc.NewCollection(CatLink))

	e.MustAssign("content", NewContent(""))
	e.MustAssign("summary", NewSummary(""))
	e.MustAssign("categories", xmldoc.NewCollection(CatCategory))
	e.MustAssign("contributors", xmldoc.NewCollection(CatContributor))
	e.MustAssign("published", NewPublished(0, o.offset))
	e.MustAssign("source", NewSource(opts...))
	e.MustAssign("rights", NewRights(""))
	return &Entry{Element: e.Lock()}
}

func (e *Entry) Title() *xmldoc.Element       { return slotElement(e.Element, "title") }
func (e *Entry) ID() *xmldoc.Element          { return slotElement(e.Element, "id") }
func (e *Entry) Updated() *xmldoc.Timestamp   { return slotTimestamp(e.Element, "updated") }
func (e *Entry) Published() *xmldoc.Timestamp { return slotTimestamp(e.Element, "published") }
func (e *Entry) Content() *xmldoc.Element     { return slotElement(e.Element, "content") }
func (e *Entry) Summary() *xmldoc.Element     { return slotElement(e.Element, "summary") }
func (e *Entry) Rights() *xmldoc.Element      { return slotElement(e.Element, "rights") }

// Source returns the entry's <source> element.
func (e *Entry) Source() *Source {
	s, _ := e.Slot("source").(*Source)
	return s
}

func (e *Entry) Authors() *xmldoc.List[*Person]      { return slotList[*Person](e.Element, "authors") }
func (e *Entry) Contributors() *xmldoc.List[*Person] { return slotList[*Person](e.Element, "contributors") }
func (e *Entry) Links() *xmldoc.List[*xmldoc.Element] {
	return slotList[*xmldoc.Element](e.Element, "links")
}
func (e *Entry) Categories() *xmldoc.List[*xmldoc.Element] {
	return slotList[*xmldoc.Element](e.Element, "categories")
}

// NewDocument returns a document whose root is feed.
func NewDocument(feed *Feed) (*xmldoc.Document, error) {
	return xmldoc.NewDocumentWithRoot(feed)
}

func slotElement(e *xmldoc.Element, slot string) *xmldoc.Element {
	el, _ := e.Slot(slot).(*xmldoc.Element)
	return el
}

func slotTimestamp(e *xmldoc.Element, slot string) *xmldoc.Timestamp {
	ts, _ := e.Slot(slot).(*xmldoc.Timestamp)
	return ts
}

func slotList[T xmldoc.Node](e *xmldoc.Element, slot string) *xmldoc.List[T] {
	c, _ := e.Slot(slot).(*xmldoc.Collection)
	return xmldoc.ListOf[T](c)
}
