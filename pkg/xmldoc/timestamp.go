package xmldoc

import (
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/timestamp"
)

// Timestamp is an element whose text is an instant in the timestamp
// profile. The text is computed from the instant on every render; setting
// text parses it.
type Timestamp struct {
	item
	tag    string
	attrs  Attrs
	t      float64
	offset string
}

// NewTimestamp returns a timestamp element. An empty offset means "Z".
func NewTimestamp(tag string, t float64, offset string) *Timestamp {
	if offset == "" {
		offset = timestamp.UTC
	}
	return &Timestamp{
		tag:    tag,
		attrs:  newAttrs(nil),
		t:      t,
		offset: offset,
	}
}

func (ts *Timestamp) Tag() string        { return ts.tag }
func (ts *Timestamp) Kind() Kind         { return KindTimestamp }
func (ts *Timestamp) Category() Category { return Category(ts.tag) }
func (ts *Timestamp) IsElement() bool    { return true }

// Is reports whether the timestamp belongs to c.
func (ts *Timestamp) Is(c Category) bool {
	return c == AnyItem || c == ElementItem || c == ts.Category()
}

// Time returns the instant in seconds since the epoch; 0 means unset.
func (ts *Timestamp) Time() float64 { return ts.t }

// SetTime replaces the instant. A timestamp under a mixed element holding
// text cannot go from unset to set.
func (ts *Timestamp) SetTime(t float64) error {
	if t != 0 && ts.IsEmpty() {
		if err := guardFill(ts); err != nil {
			return err
		}
	}
	ts.t = t
	return nil
}

// Update sets the instant to now.
func (ts *Timestamp) Update(now float64) error {
	return ts.SetTime(now)
}

// Offset returns the UTC offset string used for rendering.
func (ts *Timestamp) Offset() string { return ts.offset }

// SetOffset changes the rendering offset. It accepts "Z", "z" or "±HH:MM".
func (ts *Timestamp) SetOffset(offset string) error {
	if !timestamp.ValidOffset(offset) {
		return errors.Newf(errors.ErrInvalidTimestamp, "invalid UTC offset %q", offset).
			WithDetail("offset", offset)
	}
	ts.offset = offset
	return nil
}

// Text returns the formatted instant, or "" when unset.
func (ts *Timestamp) Text() string {
	return timestamp.Format(ts.t, ts.offset)
}

// SetText parses s and replaces the instant. The epoch itself is refused
// since 0 means unset. On failure the old instant is kept.
func (ts *Timestamp) SetText(s string) error {
	t, err := timestamp.Parse(s)
	if err != nil {
		return err
	}
	if t == 0 {
		return errors.Newf(errors.ErrInvalidTimestamp, "%q is the epoch, which reads as an unset timestamp", s).
			WithDetail("value", s)
	}
	return ts.SetTime(t)
}

func (ts *Timestamp) Attrs() *Attrs { return &ts.attrs }

func (ts *Timestamp) SetAttr(name, value string) error {
	if ts.IsEmpty() {
		if err := guardFill(ts); err != nil {
			return err
		}
	}
	return ts.attrs.Set(name, value)
}

func (ts *Timestamp) Attr(name string) string {
	return ts.attrs.Value(name)
}

// IsEmpty reports whether the timestamp is unset and has no attributes.
func (ts *Timestamp) IsEmpty() bool {
	return ts.attrs.Len() == 0 && ts.t == 0
}

// Render renders the timestamp element; its text is never multiline.
func (ts *Timestamp) Render(f format.Controller) string {
	return renderTag(f, tagShape{
		tag:         ts.tag,
		attrs:       &ts.attrs,
		hasContents: ts.t != 0,
		contents: func(format.Controller) string {
			return ts.Text()
		},
	})
}
