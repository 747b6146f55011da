package manifest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/logging"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/timestamp"
)

// Format is a manifest encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", errors.Newf(errors.ErrManifestLoad, "cannot tell the manifest format of %s (want .yaml, .yml or .toml)", path).
		WithDetail("path", path)
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest").With().Str("path", path).Logger()

	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read manifest").
			WithDetail("path", path)
	}

	m, err := Decode(data, f)
	if err != nil {
		if de, ok := err.(*errors.DocError); ok {
			de.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("format", string(f)).
		Int("entries", len(m.Entries)).
		Msg("Manifest loaded")
	return m, nil
}

// Decode parses data in format f and validates the result.
func Decode(data []byte, f Format) (*Manifest, error) {
	var m Manifest
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse YAML manifest")
		}
	case TOML:
		if err := decodeTOML(data, &m); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Newf(errors.ErrManifestLoad, "unknown manifest format %q", f)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// decodeTOML decodes data into m. Native TOML datetimes are turned into
// timestamp strings first, so "updated = 2003-12-13T18:30:02Z" reads the
// same as its quoted form.
func decodeTOML(data []byte, m *Manifest) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, errors.ErrManifestParse, "failed to parse TOML manifest")
	}
	normalized, err := toml.Marshal(stringifyDates(raw))
	if err != nil {
		return errors.Wrap(err, errors.ErrManifestParse, "failed to parse TOML manifest")
	}

	dec := toml.NewDecoder(bytes.NewReader(normalized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		return errors.Wrap(err, errors.ErrManifestParse, "failed to parse TOML manifest")
	}
	return nil
}

func stringifyDates(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = stringifyDates(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = stringifyDates(item)
		}
		return t
	case time.Time:
		return t.Format(timestamp.Layout + "Z07:00")
	case toml.LocalDateTime:
		return t.AsTime(time.UTC).Format(timestamp.Layout)
	case toml.LocalDate:
		return t.AsTime(time.UTC).Format(timestamp.Layout)
	case toml.LocalTime:
		return t.String()
	}
	return v
}
