package xmldoc

import (
	"strings"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
)

// tagShape is what the shared element renderer needs to know about a node.
type tagShape struct {
	tag         string
	attrs       *Attrs
	hasContents bool
	multiline   bool
	contents    func(f format.Controller) string
}

// renderTag renders an element-like node: suppressed when empty below the
// top level, self-closing without contents, contents on their own lines when
// multiline and inline otherwise.
func renderTag(f format.Controller, s tagShape) string {
	if s.attrs.Len() == 0 && !s.hasContents && !f.ShouldRenderEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString(f.Indent())
	b.WriteString("<")
	b.WriteString(s.tag)
	b.WriteString(s.attrs.render(f))

	if !s.hasContents {
		b.WriteString("/>")
		return b.String()
	}

	b.WriteString(">")
	if s.multiline {
		b.WriteString("\n")
		b.WriteString(s.contents(f.Deeper(1)))
		b.WriteString("\n")
		b.WriteString(f.Indent())
	} else {
		b.WriteString(s.contents(f))
	}
	b.WriteString("</")
	b.WriteString(s.tag)
	b.WriteString(">")
	return b.String()
}

// joinRendered renders each node with f and joins the non-empty results
// with newlines.
func joinRendered(f format.Controller, nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s := n.Render(f); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func anyNonEmpty(nodes []Node) bool {
	for _, n := range nodes {
		if !n.IsEmpty() {
			return true
		}
	}
	return false
}
