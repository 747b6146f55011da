package atom

import (
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/xmldoc"
)

// Namespace is the Atom XML namespace, set on every feed.
const Namespace = "http://www.w3.org/2005/Atom"

// Categories of the Atom constructs, used to type collections.
const (
	CatTitle       xmldoc.Category = "Title"
	CatSubtitle    xmldoc.Category = "Subtitle"
	CatSummary     xmldoc.Category = "Summary"
	CatContent     xmldoc.Category = "Content"
	CatRights      xmldoc.Category = "Rights"
	CatID          xmldoc.Category = "Id"
	CatGenerator   xmldoc.Category = "Generator"
	CatCategory    xmldoc.Category = "Category"
	CatLink        xmldoc.Category = "Link"
	CatIcon        xmldoc.Category = "Icon"
	CatLogo        xmldoc.Category = "Logo"
	CatName        xmldoc.Category = "Name"
	CatEmail       xmldoc.Category = "Email"
	CatURI         xmldoc.Category = "Uri"
	CatAuthor      xmldoc.Category = "Author"
	CatContributor xmldoc.Category = "Contributor"
	CatEntry       xmldoc.Category = "Entry"
	CatSource      xmldoc.Category = "Source"
	CatFeed        xmldoc.Category = "Feed"
)

// Attribute names with a fixed meaning in Atom.
const (
	AttrHref     = "href"
	AttrRel      = "rel"
	AttrType     = "type"
	AttrHreflang = "hreflang"
	AttrTitle    = "title"
	AttrLength   = "length"
	AttrLang     = "xml:lang"
	AttrTerm     = "term"
	AttrScheme   = "scheme"
	AttrLabel    = "label"
	AttrURI      = "uri"
	AttrVersion  = "version"
	AttrXMLNS    = "xmlns"
)

// Text construct types.
const (
	TypeText  = "text"
	TypeHTML  = "html"
	TypeXHTML = "xhtml"
)

var (
	linkAttrs      = []string{AttrHref, AttrRel, AttrType, AttrHreflang, AttrTitle, AttrLength, AttrLang}
	categoryAttrs  = []string{AttrTerm, AttrScheme, AttrLabel}
	generatorAttrs = []string{AttrURI, AttrVersion}
	textAttrs      = []string{AttrType}
)

func textConstruct(tag string, cat xmldoc.Category, text string) *xmldoc.Element {
	return xmldoc.NewElement(tag, xmldoc.ShapeText,
		xmldoc.WithCategory(cat),
		xmldoc.WithPriority(textAttrs...),
		xmldoc.WithText(text),
	).Lock()
}

func plain(tag string, cat xmldoc.Category, text string) *xmldoc.Element {
	return xmldoc.NewElement(tag, xmldoc.ShapeText,
		xmldoc.WithCategory(cat),
		xmldoc.WithText(text),
	).Lock()
}

// Atom text constructs. The type attribute may be set to text, html or xhtml.
func NewTitle(text string) *xmldoc.Element    { return textConstruct("title", CatTitle, text) }
func NewSubtitle(text string) *xmldoc.Element { return textConstruct("subtitle", CatSubtitle, text) }
func NewSummary(text string) *xmldoc.Element  { return textConstruct("summary", CatSummary, text) }
func NewContent(text string) *xmldoc.Element  { return textConstruct("content", CatContent, text) }
func NewRights(text string) *xmldoc.Element   { return textConstruct("rights", CatRights, text) }

func NewID(text string) *xmldoc.Element    { return plain("id", CatID, text) }
func NewIcon(text string) *xmldoc.Element  { return plain("icon", CatIcon, text) }
func NewLogo(text string) *xmldoc.Element  { return plain("logo", CatLogo, text) }
func NewName(text string) *xmldoc.Element  { return plain("name", CatName, text) }
func NewEmail(text string) *xmldoc.Element { return plain("email", CatEmail, text) }
func NewURI(text string) *xmldoc.Element   { return plain("uri", CatURI, text) }

// NewGenerator returns a <generator>; uri and version render in that order.
func NewGenerator(name string) *xmldoc.Element {
	return xmldoc.NewElement("generator", xmldoc.ShapeText,
		xmldoc.WithCategory(CatGenerator),
		xmldoc.WithPriority(generatorAttrs...),
		xmldoc.WithText(name),
	).Lock()
}

// NewCategory returns a <category> with its term set.
func NewCategory(term string) *xmldoc.Element {
	return xmldoc.NewElement("category", xmldoc.ShapeText,
		xmldoc.WithCategory(CatCategory),
		xmldoc.WithPriority(categoryAttrs...),
		xmldoc.WithAttr(AttrTerm, term),
	).Lock()
}

// NewLink returns a <link> with its href set.
func NewLink(href string) *xmldoc.Element {
	return xmldoc.NewElement("link", xmldoc.ShapeText,
		xmldoc.WithCategory(CatLink),
		xmldoc.WithPriority(linkAttrs...),
		xmldoc.WithAttr(AttrHref, href),
	).Lock()
}

// NewUpdated returns an <updated> timestamp.
func NewUpdated(t float64, offset string) *xmldoc.Timestamp {
	return xmldoc.NewTimestamp("updated", t, offset)
}

// NewPublished returns a <published> timestamp.
func NewPublished(t float64, offset string) *xmldoc.Timestamp {
	return xmldoc.NewTimestamp("published", t, offset)
}
