// pkg/atom/feed_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: xmldoc, format, beevik/etree (through Validate)
// PURPOSE: Test Atom feed assembly end to end against the RFC 4287 sample

package atom_test

import (
	"strings"
	"testing"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/atom"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/xmldoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const robots = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Example Feed</title>
	<id>urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6</id>
	<updated>2003-12-13T18:30:02Z</updated>
	<author>
		<name>John Doe</name>
	</author>
	<link href="http://example.org/"/>
	<entry>
		<title>Atom-Powered Robots Run Amok</title>
		<id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
		<updated>2003-12-13T18:30:02Z</updated>
		<link href="http://example.org/2003/12/13/atom03"/>
		<summary>Some text.</summary>
	</entry>
</feed>`

func buildRobots(t *testing.T) *xmldoc.Document {
	t.Helper()

	feed := atom.NewFeed()
	require.NoError(t, feed.Assign("title", "Example Feed"))
	require.NoError(t, feed.Assign("id", "urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6"))
	require.NoError(t, feed.Assign("updated", "2003-12-13T18:30:02Z"))
	require.NoError(t, feed.Authors().Append(atom.NewAuthor("John Doe")))
	require.NoError(t, feed.Links().Append(atom.NewLink("http://example.org/")))

	entry := atom.NewEntry()
	require.NoError(t, entry.Assign("title", "Atom-Powered Robots Run Amok"))
	require.NoError(t, entry.Assign("id", "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a"))
	require.NoError(t, entry.Assign("updated", "2003-12-13T18:30:02Z"))
	require.NoError(t, entry.Links().Append(atom.NewLink("http://example.org/2003/12/13/atom03")))
	require.NoError(t, entry.Assign("summary", "Some text."))
	require.NoError(t, feed.AddEntry(entry))

	doc, err := atom.NewDocument(feed)
	require.NoError(t, err)
	return doc
}

func TestFeed_RobotsSample(t *testing.T) {
	doc := buildRobots(t)

	assert.Equal(t, robots, doc.String())
	assert.NoError(t, doc.Validate())
}

func TestFeed_RobotsSampleTwoSpaces(t *testing.T) {
	doc := buildRobots(t)
	want := strings.ReplaceAll(robots, "\t", "  ")

	assert.Equal(t, want, doc.Render(format.NewWithUnit(0, format.Normal, "  ")))
}

func TestFeed_Defaults(t *testing.T) {
	feed := atom.NewFeed()

	assert.Equal(t, atom.DefaultFeedTitle, feed.Title().Text())
	assert.Equal(t, atom.DefaultFeedID, feed.ID().Text())
	assert.Equal(t, atom.Namespace, feed.Attr(atom.AttrXMLNS))
	assert.True(t, feed.Locked())
	assert.Equal(t, []string{
		"title", "id", "updated", "authors", "links", "subtitle", "categories",
		"contributors", "generator", "icon", "logo", "rights", "entries",
	}, feed.SlotNames())

	entry := atom.NewEntry()
	assert.Equal(t, atom.DefaultEntryTitle, entry.Title().Text())
	assert.Equal(t, atom.DefaultEntryID, entry.ID().Text())
	assert.Equal(t, []string{
		"title", "id", "updated", "authors", "links", "content", "summary",
		"categories", "contributors", "published", "source", "rights",
	}, entry.SlotNames())
	assert.True(t, entry.Source().IsEmpty())
}

func TestFeed_CollectionsAreTyped(t *testing.T) {
	feed := atom.NewFeed()

	err := feed.Links().Collection().Append(atom.NewCategory("robots"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrWrongCategory))

	err = feed.Authors().Collection().Append(atom.NewContributor("Jane"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrWrongCategory))

	err = feed.Entries().Collection().Append(atom.NewSource())
	assert.True(t, errors.IsErrorCode(err, errors.ErrWrongCategory))

	assert.Equal(t, 0, feed.Links().Len())
	assert.Equal(t, 0, feed.Authors().Len())
	assert.Equal(t, 0, feed.Entries().Len())
}

func TestFeed_SlotRules(t *testing.T) {
	feed := atom.NewFeed()

	t.Run("no_new_slots", func(t *testing.T) {
		err := feed.Assign("extra", atom.NewIcon("x"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrStructuralViolation))
	})

	t.Run("replace_title_node", func(t *testing.T) {
		title := atom.NewTitle("<b>Bold</b>")
		require.NoError(t, title.SetAttr(atom.AttrType, atom.TypeHTML))
		require.NoError(t, feed.Assign("title", title))
		assert.Same(t, title, feed.Title())
	})

	t.Run("wrong_node_for_slot", func(t *testing.T) {
		err := feed.Assign("title", atom.NewSubtitle("x"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrTypeMismatch))
	})

	t.Run("timestamp_from_number", func(t *testing.T) {
		require.NoError(t, feed.Assign("updated", 1071340202))
		assert.Equal(t, "2003-12-13T18:30:02Z", feed.Updated().Text())
	})

	t.Run("source_replacement", func(t *testing.T) {
		entry := atom.NewEntry()
		src := atom.NewSource()
		require.NoError(t, src.Assign("title", "Upstream"))
		require.NoError(t, entry.Assign("source", src))
		assert.Same(t, src, entry.Source())
	})
}

func TestEntry_FullRender(t *testing.T) {
	entry := atom.NewEntry(atom.WithOffset("+02:00"))
	require.NoError(t, entry.Assign("title", "T"))
	require.NoError(t, entry.Assign("id", "tag:example.org,2003-12-13:/weblog/1"))
	require.NoError(t, entry.Assign("updated", "2003-12-13T18:30:02Z"))
	require.NoError(t, entry.Assign("published", "2003-12-13T18:30:02Z"))

	author := atom.NewAuthor("Jane")
	require.NoError(t, author.Assign("email", "jane@example.org"))
	require.NoError(t, entry.Authors().Append(author))

	link := atom.NewLink("http://example.org/1")
	require.NoError(t, link.SetAttr(atom.AttrType, "text/html"))
	require.NoError(t, link.SetAttr(atom.AttrRel, "alternate"))
	require.NoError(t, entry.Links().Append(link))

	cat := atom.NewCategory("robots")
	require.NoError(t, cat.SetAttr(atom.AttrLabel, "Robots"))
	require.NoError(t, entry.Categories().Append(cat))

	require.NoError(t, entry.Content().SetAttr(atom.AttrType, atom.TypeHTML))
	require.NoError(t, entry.Assign("content", "&lt;p&gt;hi&lt;/p&gt;"))

	want := "<entry>\n" +
		"\t<title>T</title>\n" +
		"\t<id>tag:example.org,2003-12-13:/weblog/1</id>\n" +
		"\t<updated>2003-12-13T20:30:02+02:00</updated>\n" +
		"\t<author>\n" +
		"\t\t<name>Jane</name>\n" +
		"\t\t<email>jane@example.org</email>\n" +
		"\t</author>\n" +
		"\t<link\n" +
		"\t\t\thref=\"http://example.org/1\"\n" +
		"\t\t\trel=\"alternate\"\n" +
		"\t\t\ttype=\"text/html\"/>\n" +
		"\t<content type=\"html\">&lt;p&gt;hi&lt;/p&gt;</content>\n" +
		"\t<category\n" +
		"\t\t\tterm=\"robots\"\n" +
		"\t\t\tlabel=\"Robots\"/>\n" +
		"\t<published>2003-12-13T20:30:02+02:00</published>\n" +
		"</entry>"
	assert.Equal(t, want, xmldoc.String(entry))
	assert.Equal(t, "Jane", entry.Authors().At(0).PersonName().Text())

	_, err := xmldoc.Check(xmldoc.String(entry))
	assert.NoError(t, err)
}

func TestGenerator(t *testing.T) {
	g := atom.NewGenerator("atomdoc")
	require.NoError(t, g.SetAttr(atom.AttrVersion, "1.0"))
	require.NoError(t, g.SetAttr(atom.AttrURI, "https://example.org/atomdoc"))

	want := "<generator\n" +
		"\t\turi=\"https://example.org/atomdoc\"\n" +
		"\t\tversion=\"1.0\">atomdoc</generator>"
	assert.Equal(t, want, xmldoc.String(g))
}
