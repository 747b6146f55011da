package xmldoc

import (
	"github.com/beevik/etree"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
)

// Check parses rendered markup and returns the parsed tree. It fails when the
// text is not well-formed or has no root element.
func Check(markup string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedOutput, "rendered markup is not well-formed")
	}
	if doc.Root() == nil {
		return nil, errors.New(errors.ErrMalformedOutput, "rendered markup has no root element")
	}
	return doc, nil
}
