// pkg/manifest/manifest_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (t.TempDir), yaml.v3, go-toml/v2, atom, xmldoc
// PURPOSE: Test manifest decoding and feed document building

package manifest_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/manifest"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/testutil"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/timestamp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const robotsYAML = `
title: Example Feed
id: urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6
updated: "2003-12-13T18:30:02Z"
authors:
  - name: John Doe
links:
  - href: http://example.org/
entries:
  - title: Atom-Powered Robots Run Amok
    id: urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a
    updated: "2003-12-13T18:30:02Z"
    links:
      - href: http://example.org/2003/12/13/atom03
    summary: Some text.
`

const robotsTOML = `
title = "Example Feed"
id = "urn:uuid:60a76c80-d399-11d9-b93C-0003939e0af6"
updated = "2003-12-13T18:30:02Z"

[[authors]]
name = "John Doe"

[[links]]
href = "http://example.org/"

[[entries]]
title = "Atom-Powered Robots Run Amok"
id = "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a"
updated = "2003-12-13T18:30:02Z"
summary = "Some text."

[[entries.links]]
href = "http://example.org/2003/12/13/atom03"
`

const robotsXML = `<?xml version="1.0" encoding="utf-8"?>
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

func TestLoadAndBuild_Robots(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "feed.yaml", content: robotsYAML},
		{name: "yml", file: "feed.yml", content: robotsYAML},
		{name: "toml", file: "feed.toml", content: robotsTOML},
		{name: "toml_native_datetimes", file: "feed.toml", content: strings.ReplaceAll(robotsTOML, `"2003-12-13T18:30:02Z"`, "2003-12-13T18:30:02Z")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Load(testutil.TempFile(t, tt.file, tt.content))
			require.NoError(t, err)
			require.Len(t, m.Entries, 1)

			doc, err := manifest.Build(m, manifest.BuildOptions{})
			require.NoError(t, err)

			assert.Equal(t, robotsXML, doc.String())
			assert.NoError(t, doc.Validate())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.ErrorCode
	}{
		{name: "unknown_extension", file: "feed.json", content: "{}", code: errors.ErrManifestLoad},
		{name: "bad_yaml", file: "feed.yaml", content: "title: [unclosed", code: errors.ErrManifestParse},
		{name: "unknown_yaml_field", file: "feed.yaml", content: "titel: x", code: errors.ErrManifestParse},
		{name: "bad_toml", file: "feed.toml", content: "title = ", code: errors.ErrManifestParse},
		{name: "unknown_toml_field", file: "feed.toml", content: `titel = "x"`, code: errors.ErrManifestParse},
		{name: "link_without_href", file: "feed.yaml", content: "links:\n  - rel: self\n", code: errors.ErrManifestInvalid},
		{name: "bad_text_type", file: "feed.yaml", content: "entries:\n  - content_type: markdown\n", code: errors.ErrManifestInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Load(testutil.TempFile(t, tt.file, tt.content))

			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := manifest.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})
}

func TestDecode_TOMLDatetimes(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "offset_utc", value: "2003-12-13T18:30:02Z", want: "2003-12-13T18:30:02Z"},
		{name: "offset_numeric", value: "2003-12-13T13:30:02-05:00", want: "2003-12-13T13:30:02-05:00"},
		{name: "fraction_dropped", value: "2003-12-13T18:30:02.25Z", want: "2003-12-13T18:30:02Z"},
		{name: "local_datetime", value: "2003-12-13T18:30:02", want: "2003-12-13T18:30:02"},
		{name: "local_date", value: "2003-12-13", want: "2003-12-13T00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "title = \"T\"\nid = \"x\"\nupdated = " + tt.value + "\n\n[[entries]]\npublished = " + tt.value + "\n"

			m, err := manifest.Decode([]byte(data), manifest.TOML)

			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Updated)
			require.Len(t, m.Entries, 1)
			assert.Equal(t, tt.want, m.Entries[0].Published)
		})
	}

	t.Run("local_time_is_rejected_when_built", func(t *testing.T) {
		m, err := manifest.Decode([]byte("updated = 18:30:02\n"), manifest.TOML)
		require.NoError(t, err)

		_, err = manifest.Build(m, manifest.BuildOptions{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTimestamp))
	})

	t.Run("unknown_field_still_rejected", func(t *testing.T) {
		_, err := manifest.Decode([]byte("updated = 2003-12-13T18:30:02Z\ntitel = \"x\"\n"), manifest.TOML)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	})
}

func TestDecode_Empty(t *testing.T) {
	m, err := manifest.Decode(nil, manifest.YAML)
	require.NoError(t, err)
	assert.Empty(t, m.Entries)
}

func TestValidate_FieldPath(t *testing.T) {
	m := &manifest.Manifest{
		Entries: []manifest.Entry{
			{},
			{Categories: []manifest.Category{{Scheme: "x"}}},
		},
	}

	err := m.Validate()

	require.Error(t, err)
	assert.Equal(t, "entries[1].categories[0].term", errors.GetErrorDetails(err)["field"])
}

func TestBuild_InvalidTimestamp(t *testing.T) {
	m := &manifest.Manifest{
		Updated: "2003-12-13T18:30:02Z",
		Entries: []manifest.Entry{
			{Updated: "2003-12-13T18:30:02Z"},
			{Published: "last tuesday"},
		},
	}

	doc, err := manifest.Build(m, manifest.BuildOptions{})

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTimestamp))
	assert.Equal(t, "entries[1].published", errors.GetErrorDetails(err)["field"])
}

func TestBuild_MissingUpdatedUsesSequence(t *testing.T) {
	start := timestamp.MustParse("2003-12-13T18:30:02Z")
	m := &manifest.Manifest{
		Title:   "Seq",
		Entries: []manifest.Entry{{Title: "one"}, {Title: "two", Updated: "2010-01-01T00:00:00Z"}, {Title: "three"}},
	}

	doc, err := manifest.Build(m, manifest.BuildOptions{Now: start, Offset: "+01:00"})
	require.NoError(t, err)

	out := doc.String()
	assert.Contains(t, out, "\t<updated>2003-12-13T19:30:02+01:00</updated>")
	assert.Contains(t, out, "\t\t<updated>2003-12-13T19:30:03+01:00</updated>")
	assert.Contains(t, out, "\t\t<updated>2010-01-01T01:00:00+01:00</updated>")
	assert.Contains(t, out, "\t\t<updated>2003-12-13T19:30:04+01:00</updated>")
}

func TestBuild_FullFeed(t *testing.T) {
	m := &manifest.Manifest{
		Title:     "Tom & Jerry",
		ID:        "tag:example.org,2003:feed",
		Updated:   "2003-12-13T18:30:02Z",
		Subtitle:  "cats <and> mice",
		Rights:    "Copyright (C) 2003 by Jane.",
		Icon:      "http://example.org/icon.png",
		Generator: &manifest.Generator{Name: "atomdoc", Version: "1.0"},
		Authors:   []manifest.Person{{Name: "Jane", Email: "jane@example.org"}},
		Links: []manifest.Link{
			{Href: "http://example.org/feed?a=1&b=2", Rel: "self", Type: "application/atom+xml"},
		},
		Categories: []manifest.Category{{Term: "cartoons", Label: "Cartoons"}},
		Entries: []manifest.Entry{{
			Title:       "Episode 1",
			ID:          "tag:example.org,2003:1",
			Updated:     "2003-12-13T18:30:02Z",
			Published:   "2003-12-12T18:30:02Z",
			Content:     "<p>Chase</p>",
			ContentType: "html",
		}},
		Comments: manifest.Comments{Above: []string{"generated feed"}, Below: []string{"end"}},
	}

	doc, err := manifest.Build(m, manifest.BuildOptions{Generator: manifest.Generator{Name: "ignored"}})
	require.NoError(t, err)
	out := doc.String()

	assert.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!-- generated feed -->\n<feed"))
	assert.True(t, strings.HasSuffix(out, "</feed>\n<!-- end -->"))
	assert.Contains(t, out, "\t<title>Tom &amp; Jerry</title>")
	assert.Contains(t, out, "\t<subtitle>cats &lt;and&gt; mice</subtitle>")
	assert.Contains(t, out, "\t<generator version=\"1.0\">atomdoc</generator>")
	assert.Contains(t, out, "\t\thref=\"http://example.org/feed?a=1&amp;b=2\"")
	assert.Contains(t, out, "\t\t<content type=\"html\">&lt;p&gt;Chase&lt;/p&gt;</content>")
	assert.Contains(t, out, "\t\t<published>2003-12-12T18:30:02Z</published>")
	assert.NotContains(t, out, "ignored")
	assert.NoError(t, doc.Validate())
}

func TestBuild_DefaultGenerator(t *testing.T) {
	doc, err := manifest.Build(&manifest.Manifest{Title: "x"}, manifest.BuildOptions{
		Now:       1,
		Generator: manifest.Generator{Name: "atomdoc", URI: "https://example.org/atomdoc", Version: "0.1"},
	})
	require.NoError(t, err)

	assert.Contains(t, doc.String(), "\t<generator\n\t\t\turi=\"https://example.org/atomdoc\"\n\t\t\tversion=\"0.1\">atomdoc</generator>")
}

func TestBuild_BadOffset(t *testing.T) {
	_, err := manifest.Build(&manifest.Manifest{}, manifest.BuildOptions{Offset: "CET"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTimestamp))
}
