package xmldoc

import (
	"fmt"
	"strings"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
)

// Tree returns a debugging dump of n and everything under it, one line per
// node prefixed with its level. The output is not XML.
func Tree(n Node) string {
	var lines []string
	walkTree(n, &lines)
	return strings.Join(lines, "\n")
}

func walkTree(n Node, lines *[]string) {
	level := Level(n)
	name := DisplayName(n)
	switch v := n.(type) {
	case *Document:
		*lines = append(*lines, fmt.Sprintf("%2d) %s (instance of %s)", level, name, v.Kind()))
		for _, c := range v.items {
			walkTree(c, lines)
		}
	case *Collection:
		*lines = append(*lines, fmt.Sprintf("%2d) %s %s", level, name, v.Describe()))
		for _, c := range v.members {
			walkTree(c, lines)
		}
	default:
		if e := asElement(n); e != nil {
			switch {
			case len(e.children) > 0:
				*lines = append(*lines, fmt.Sprintf("%2d) %s (instance of %s <%s>)", level, name, e.Kind(), e.tag))
				for _, c := range e.children {
					walkTree(c, lines)
				}
			case e.IsEmpty():
				*lines = append(*lines, fmt.Sprintf("%2d) %s empty %s...", level, name, e.Kind()))
			default:
				*lines = append(*lines, fmt.Sprintf("%2d) %s\t%s", level, name, e.Render(format.NormalAt(0))))
			}
			return
		}
		*lines = append(*lines, fmt.Sprintf("%2d) %s\t%s", level, name, n.Render(format.NormalAt(0))))
	}
}

// elementer is satisfied by *Element and by types embedding it.
type elementer interface {
	element() *Element
}

func (e *Element) element() *Element { return e }

func asElement(n Node) *Element {
	if el, ok := n.(elementer); ok {
		return el.element()
	}
	return nil
}
