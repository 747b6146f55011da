package xmldoc

import (
	"strings"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
)

// Attrs is an element's attribute map. Render order is the declared priority
// list first, then every other attribute in the order it was first set.
type Attrs struct {
	priority []string
	order    []string
	values   map[string]string
}

func newAttrs(priority []string) Attrs {
	return Attrs{
		priority: append([]string(nil), priority...),
		values:   make(map[string]string),
	}
}

// Set stores value under name. Names must be non-empty and free of
// whitespace, quotes and markup characters.
func (a *Attrs) Set(name, value string) error {
	if !validAttrName(name) {
		return errors.Newf(errors.ErrInvalidInput, "invalid attribute name %q", name).
			WithDetail("attribute", name)
	}
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[name]; !ok {
		a.order = append(a.order, name)
	}
	a.values[name] = value
	return nil
}

// Get returns the value stored under name.
func (a *Attrs) Get(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Value returns the value stored under name, or "".
func (a *Attrs) Value(name string) string {
	return a.values[name]
}

// Delete removes name. Deleting a missing name is a no-op.
func (a *Attrs) Delete(name string) {
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

func (a *Attrs) Len() int { return len(a.values) }

// Priority returns the declared render order.
func (a *Attrs) Priority() []string {
	return append([]string(nil), a.priority...)
}

// Names returns the set attribute names in render order.
func (a *Attrs) Names() []string {
	names := make([]string, 0, len(a.values))
	seen := make(map[string]bool, len(a.values))
	for _, n := range a.priority {
		if _, ok := a.values[n]; ok && !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	for _, n := range a.order {
		if !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	return names
}

// render returns the attribute part of a start tag, leading separator
// included. A single attribute stays on the tag's line; several go on their
// own lines two levels deeper than the tag.
func (a *Attrs) render(f format.Controller) string {
	switch a.Len() {
	case 0:
		return ""
	case 1:
		n := a.Names()[0]
		return " " + attrPair(n, a.values[n])
	}

	sep := "\n" + f.Indent(2)
	if f.IsTerse() {
		sep = " "
	}
	var b strings.Builder
	for _, n := range a.Names() {
		b.WriteString(sep)
		b.WriteString(attrPair(n, a.values[n]))
	}
	return b.String()
}

// renderInline renders every attribute on one line, each preceded by a space.
func (a *Attrs) renderInline() string {
	var b strings.Builder
	for _, n := range a.Names() {
		b.WriteString(" ")
		b.WriteString(attrPair(n, a.values[n]))
	}
	return b.String()
}

func attrPair(name, value string) string {
	return name + `="` + value + `"`
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\r\n\"'<>=&/")
}
