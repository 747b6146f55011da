// pkg/xmldoc/document_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: beevik/etree (through Check)
// PURPOSE: Test document assembly, root replacement and validation

package xmldoc_test

import (
	"testing"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/xmldoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declLine = `<?xml version="1.0" encoding="utf-8"?>`

func TestDocument_Placeholder(t *testing.T) {
	d := xmldoc.NewDocument()

	assert.False(t, d.HasRoot())
	assert.Equal(t, declLine+"\n<!-- "+xmldoc.Placeholder+" -->", d.String())
	assert.Len(t, d.Items(), 4)
	assert.Equal(t, 2, d.RootIndex())
	assert.Nil(t, d.Parent())
	assert.False(t, d.IsEmpty())
}

func TestDocument_RootStability(t *testing.T) {
	d := xmldoc.NewDocument()
	index := d.RootIndex()
	first := xmldoc.NewElement("first", xmldoc.ShapeText)
	second := xmldoc.NewElement("second", xmldoc.ShapeText)

	require.NoError(t, d.SetRoot(first))
	assert.Equal(t, index, d.RootIndex())
	assert.Same(t, first, d.Items()[index])

	require.NoError(t, d.Assign(xmldoc.SlotRoot, second))
	assert.Equal(t, index, d.RootIndex())
	assert.Same(t, second, d.Items()[index])
	assert.Same(t, second, d.Root())
	assert.Nil(t, first.Parent())
	assert.Same(t, d, second.Parent())
	assert.True(t, d.HasRoot())
	assert.Len(t, d.Items(), 4)

	assert.Equal(t, declLine+"\n<second/>", d.String())
}

func TestDocument_RootRejections(t *testing.T) {
	tests := []struct {
		name  string
		slot  string
		value any
		code  errors.ErrorCode
	}{
		{name: "collection_root", slot: xmldoc.SlotRoot, value: xmldoc.NewCollection("item"), code: errors.ErrUnsupportedRoot},
		{name: "pi_root", slot: xmldoc.SlotRoot, value: xmldoc.NewPI("php", ""), code: errors.ErrUnsupportedRoot},
		{name: "document_root", slot: xmldoc.SlotRoot, value: xmldoc.NewDocument(), code: errors.ErrUnsupportedRoot},
		{name: "string_root", slot: xmldoc.SlotRoot, value: "feed", code: errors.ErrUnsupportedRoot},
		{name: "replace_declaration", slot: xmldoc.SlotDeclaration, value: xmldoc.NewDeclaration(), code: errors.ErrStructuralViolation},
		{name: "replace_above", slot: xmldoc.SlotAbove, value: xmldoc.NewCollection(xmldoc.DocItem), code: errors.ErrStructuralViolation},
		{name: "unknown_slot", slot: "middle", value: xmldoc.NewComment("x"), code: errors.ErrStructuralViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := xmldoc.NewDocument()
			before := d.String()

			err := d.Assign(tt.slot, tt.value)

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, before, d.String())
			assert.False(t, d.HasRoot())
		})
	}
}

func TestDocument_CommentRoot(t *testing.T) {
	d, err := xmldoc.NewDocumentWithRoot(xmldoc.NewComment("nothing here"))

	require.NoError(t, err)
	assert.Equal(t, declLine+"\n<!-- nothing here -->", d.String())
}

func TestDocument_ItemsAroundRoot(t *testing.T) {
	root := xmldoc.NewElement("feed", xmldoc.ShapeNest)
	require.NoError(t, root.Assign("title", xmldoc.NewElement("title", xmldoc.ShapeText, xmldoc.WithText("T"))))
	d, err := xmldoc.NewDocumentWithRoot(root)
	require.NoError(t, err)

	require.NoError(t, d.Above().Append(xmldoc.NewPI("xml-stylesheet", `href="atom.css" type="text/css"`)))
	require.NoError(t, d.Below().Append(xmldoc.NewComment("generated")))
	require.NoError(t, d.Declaration().Set(xmldoc.AttrStandalone, "yes"))

	want := `<?xml version="1.0" encoding="utf-8" standalone="yes"?>` + "\n" +
		`<?xml-stylesheet href="atom.css" type="text/css"?>` + "\n" +
		"<feed>\n" +
		"\t<title>T</title>\n" +
		"</feed>\n" +
		"<!-- generated -->"
	assert.Equal(t, want, d.String())
	assert.Equal(t, 0, xmldoc.Level(root))
	assert.Equal(t, 1, xmldoc.Level(root.Slot("title")))
	assert.NoError(t, d.Validate())
}

func TestDocument_Verbose(t *testing.T) {
	d, err := xmldoc.NewDocumentWithRoot(xmldoc.NewElement("feed", xmldoc.ShapeNest))
	require.NoError(t, err)

	want := declLine + "\n" +
		"<!-- collection of DocItem with 0 elements -->\n" +
		"<feed/>\n" +
		"<!-- collection of DocItem with 0 elements -->"
	assert.Equal(t, want, d.Render(format.VerboseAt(0)))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		wantErr bool
	}{
		{name: "well_formed", markup: declLine + "\n<feed><title>x</title></feed>"},
		{name: "unclosed_tag", markup: "<feed><title>x</feed>", wantErr: true},
		{name: "no_root", markup: declLine, wantErr: true},
		{name: "empty", markup: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := xmldoc.Check(tt.markup)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedOutput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "feed", doc.Root().Tag)
		})
	}
}

func TestTree(t *testing.T) {
	root := xmldoc.NewElement("feed", xmldoc.ShapeNest)
	require.NoError(t, root.Assign("title", xmldoc.NewElement("title", xmldoc.ShapeText, xmldoc.WithText("T"))))
	require.NoError(t, root.Assign("subtitle", xmldoc.NewElement("subtitle", xmldoc.ShapeText)))
	require.NoError(t, root.Assign("entries", xmldoc.NewCollection("entry")))
	d, err := xmldoc.NewDocumentWithRoot(root)
	require.NoError(t, err)

	tree := xmldoc.Tree(d)

	assert.Contains(t, tree, " 0) unnamed_instance_of_Document (instance of Document)")
	assert.Contains(t, tree, " 0) root (instance of Element <feed>)")
	assert.Contains(t, tree, " 1) title\t<title>T</title>")
	assert.Contains(t, tree, " 1) subtitle empty Element...")
	assert.Contains(t, tree, " 1) entries collection of entry with 0 elements")
}
