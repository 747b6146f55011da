package xmldoc

import (
	"fmt"
	"time"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/logging"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/timestamp"
)

// timed is implemented by nodes wrapping an instant.
type timed interface {
	Node
	SetTime(t float64) error
	SetText(s string) error
}

// textual is implemented by nodes whose text a plain string can replace.
type textual interface {
	Node
	SetText(s string) error
}

// Assign stores value into the named slot. The rules, in order:
//
//  1. An unbound slot on an open element binds value when it is a Node,
//     attaching it as the element's next child.
//  2. A slot holding a timestamp takes a numeric instant or a time.Time.
//  3. A slot holding a timestamp takes a string, which must parse.
//  4. A slot holding an element takes a string as that element's text.
//  5. Anything else must be a node of the same kind and category as the
//     slot's current node, and replaces it in place.
//
// A failed assignment leaves the element untouched.
func (e *Element) Assign(slot string, value any) error {
	if err := e.assign(slot, value); err != nil {
		logger := logging.GetLogger("xmldoc")
		logger.Debug().
			Err(err).
			Str("tag", e.tag).
			Str("slot", slot).
			Msg("Assignment rejected")
		return err
	}
	return nil
}

// MustAssign is Assign for construction code whose slots are known to be
// valid. It panics on error.
func (e *Element) MustAssign(slot string, value any) {
	if err := e.Assign(slot, value); err != nil {
		panic(err)
	}
}

func (e *Element) assign(slot string, value any) error {
	if slot == "" {
		return errors.New(errors.ErrInvalidInput, "slot name must not be empty")
	}

	existing, bound := e.slots[slot]
	if !bound {
		n, ok := value.(Node)
		if !ok || n == nil {
			return errors.Newf(errors.ErrTypeMismatch, "<%s> has no slot %q; only a node can bind a new slot", e.tag, slot).
				WithDetail("slot", slot).
				WithDetail("value_type", fmt.Sprintf("%T", value))
		}
		return e.bind(slot, n)
	}

	if ts, ok := existing.(timed); ok {
		if t, ok := instant(value); ok {
			return withSlot(ts.SetTime(t), slot)
		}
		if s, ok := value.(string); ok {
			return withSlot(ts.SetText(s), slot)
		}
	}

	if s, ok := value.(string); ok {
		if tx, ok := existing.(textual); ok && existing.Kind() == KindElement {
			return withSlot(tx.SetText(s), slot)
		}
	}

	return e.replace(slot, existing, value)
}

// bind attaches n as a new child under slot.
func (e *Element) bind(slot string, n Node) error {
	if err := e.canNest(); err != nil {
		return withSlot(err, slot)
	}
	if !n.IsEmpty() && e.IsEmpty() {
		if err := guardFill(e); err != nil {
			return withSlot(err, slot)
		}
	}
	if err := attach(e, n, slot); err != nil {
		return withSlot(err, slot)
	}
	e.children = append(e.children, n)
	e.slots[slot] = n
	return nil
}

// replace swaps the node in slot for value, keeping its child position.
func (e *Element) replace(slot string, old Node, value any) error {
	n, ok := value.(Node)
	if !ok || n == nil {
		return errors.Newf(errors.ErrTypeMismatch, "value is not the same type: slot %q holds %s, got %T", slot, old.Kind(), value).
			WithDetail("slot", slot).
			WithDetail("value_type", fmt.Sprintf("%T", value))
	}
	if n.Kind() != old.Kind() || n.Category() != old.Category() {
		return errors.Newf(errors.ErrTypeMismatch, "value is not the same type: slot %q holds %s %s, got %s %s",
			slot, old.Kind(), old.Category(), n.Kind(), n.Category()).
			WithDetail("slot", slot)
	}
	if oc, ok := old.(*Collection); ok {
		if nc, ok := n.(*Collection); ok && nc.contains != oc.contains {
			return errors.Newf(errors.ErrTypeMismatch, "value is not the same type: slot %q holds a collection of %s, got one of %s",
				slot, oc.contains, nc.contains).
				WithDetail("slot", slot)
		}
	}
	if sameNode(n, old) {
		return nil
	}
	if !n.IsEmpty() {
		if e.shape == ShapeMixed && e.text != "" {
			return withSlot(errors.Newf(errors.ErrStructuralViolation, "<%s> has text contents so cannot nest", e.tag), slot)
		}
		if e.IsEmpty() {
			if err := guardFill(e); err != nil {
				return withSlot(err, slot)
			}
		}
	}
	if err := attach(e, n, slot); err != nil {
		return withSlot(err, slot)
	}
	for i, c := range e.children {
		if sameNode(c, old) {
			e.children[i] = n
			break
		}
	}
	detach(old)
	e.slots[slot] = n
	return nil
}

// instant converts the numeric values a timestamp slot accepts.
func instant(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case time.Time:
		return timestamp.FromTime(t), true
	}
	return 0, false
}

func withSlot(err error, slot string) error {
	if err == nil {
		return nil
	}
	if de, ok := err.(*errors.DocError); ok {
		return de.WithDetail("slot", slot)
	}
	return err
}
