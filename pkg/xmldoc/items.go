package xmldoc

import (
	"strings"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
)

// Comment is an XML comment. It may appear at document level or inside an
// element.
type Comment struct {
	item
	text string
}

// NewComment returns a comment with the given text.
func NewComment(text string) *Comment {
	return &Comment{text: text}
}

func (c *Comment) Kind() Kind         { return KindComment }
func (c *Comment) Category() Category { return "Comment" }
func (c *Comment) IsElement() bool    { return true }
func (c *Comment) IsEmpty() bool      { return c.text == "" }
func (c *Comment) Text() string       { return c.text }

// SetText replaces the comment body. A comment under a mixed element
// holding text cannot go from empty to non-empty.
func (c *Comment) SetText(text string) error {
	if text != "" && c.IsEmpty() {
		if err := guardFill(c); err != nil {
			return err
		}
	}
	c.text = text
	return nil
}

func (c *Comment) Is(cat Category) bool {
	return cat == AnyItem || cat == DocItem || cat == ElementItem || cat == c.Category()
}

// Render renders "<!-- text -->", or the opener, body and closer on separate
// lines when the body spans lines. A "--" in the body is broken up so the
// comment stays well-formed.
func (c *Comment) Render(f format.Controller) string {
	if c.text == "" {
		return ""
	}
	body := escapeComment(c.text)
	if strings.Contains(body, "\n") {
		return f.Indent() + "<!--\n" + body + "\n" + f.Indent() + "-->"
	}
	return f.Indent() + "<!-- " + body + " -->"
}

// PI is an XML processing instruction, <?keyword text?>.
type PI struct {
	item
	Keyword string
	text    string
}

// NewPI returns a processing instruction.
func NewPI(keyword, text string) *PI {
	return &PI{Keyword: keyword, text: text}
}

func (p *PI) Kind() Kind           { return KindPI }
func (p *PI) Category() Category   { return "PI" }
func (p *PI) IsElement() bool      { return false }
func (p *PI) IsEmpty() bool        { return p.Keyword == "" }
func (p *PI) Text() string         { return p.text }
func (p *PI) SetText(text string)  { p.text = text }
func (p *PI) Is(cat Category) bool { return cat == AnyItem || cat == DocItem || cat == p.Category() }

// Render renders the instruction; a "?>" in the body is broken up.
func (p *PI) Render(f format.Controller) string {
	return renderDecl(f, "<?", p.Keyword, escapePI(p.text), "?>")
}

// MarkupDecl is a markup declaration, <!KEYWORD text>.
type MarkupDecl struct {
	item
	Keyword string
	text    string
}

// NewMarkupDecl returns a markup declaration.
func NewMarkupDecl(keyword, text string) *MarkupDecl {
	return &MarkupDecl{Keyword: keyword, text: text}
}

func (m *MarkupDecl) Kind() Kind           { return KindMarkupDecl }
func (m *MarkupDecl) Category() Category   { return "MarkupDecl" }
func (m *MarkupDecl) IsElement() bool      { return false }
func (m *MarkupDecl) IsEmpty() bool        { return m.Keyword == "" }
func (m *MarkupDecl) Text() string         { return m.text }
func (m *MarkupDecl) SetText(text string)  { m.text = text }
func (m *MarkupDecl) Is(cat Category) bool { return cat == AnyItem || cat == DocItem || cat == m.Category() }

func (m *MarkupDecl) Render(f format.Controller) string {
	return renderDecl(f, "<!", m.Keyword, m.text, ">")
}

func renderDecl(f format.Controller, open, keyword, text, close string) string {
	if keyword == "" {
		return ""
	}
	if strings.Contains(text, "\n") {
		return f.Indent() + open + keyword + "\n" + text + "\n" + f.Indent() + close
	}
	if text == "" {
		return f.Indent() + open + keyword + close
	}
	return f.Indent() + open + keyword + " " + text + close
}

func escapeComment(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	if strings.HasSuffix(s, "-") {
		s += " "
	}
	return s
}

func escapePI(s string) string {
	return strings.ReplaceAll(s, "?>", "? >")
}

// Declaration is the <?xml ...?> line. It is never empty.
type Declaration struct {
	item
	attrs Attrs
}

// Declaration attribute names, in render order.
const (
	AttrVersion    = "version"
	AttrEncoding   = "encoding"
	AttrStandalone = "standalone"
)

// NewDeclaration returns version 1.0, utf-8.
func NewDeclaration() *Declaration {
	d := &Declaration{attrs: newAttrs([]string{AttrVersion, AttrEncoding, AttrStandalone})}
	_ = d.attrs.Set(AttrVersion, "1.0")
	_ = d.attrs.Set(AttrEncoding, "utf-8")
	return d
}

func (d *Declaration) Kind() Kind           { return KindDeclaration }
func (d *Declaration) Category() Category   { return "XMLDeclaration" }
func (d *Declaration) IsElement() bool      { return true }
func (d *Declaration) IsEmpty() bool        { return false }
func (d *Declaration) Is(cat Category) bool { return cat == AnyItem || cat == d.Category() }
func (d *Declaration) Attrs() *Attrs        { return &d.attrs }

// Set sets a declaration attribute such as version, encoding or standalone.
func (d *Declaration) Set(name, value string) error {
	return d.attrs.Set(name, value)
}

// Render renders every attribute on one line.
func (d *Declaration) Render(f format.Controller) string {
	return f.Indent() + "<?xml" + d.attrs.renderInline() + "?>"
}
