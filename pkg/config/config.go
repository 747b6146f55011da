package config

import (
	"strconv"
	"strings"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/format"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/timestamp"
)

// Config is the decoded atomdoc configuration.
type Config struct {
	Render    Render    `koanf:"render"`
	Time      Time      `koanf:"time"`
	Generator Generator `koanf:"generator"`
	Check     Check     `koanf:"check"`
}

// Render controls document output.
type Render struct {
	Indent string `koanf:"indent"`
	Mode   string `koanf:"mode"`
}

// Time controls timestamp rendering.
type Time struct {
	Offset string `koanf:"offset"`
}

// Generator describes the <generator> element written into feeds.
type Generator struct {
	Name    string `koanf:"name"`
	URI     string `koanf:"uri"`
	Version string `koanf:"version"`
}

// Check toggles well-formedness checking of rendered output.
type Check struct {
	Enabled bool `koanf:"enabled"`
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := format.ParseMode(c.Render.Mode); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid render.mode").
			WithDetail("key", "render.mode")
	}
	if _, err := IndentUnit(c.Render.Indent); err != nil {
		return err
	}
	if !timestamp.ValidOffset(timestamp.ResolveOffset(c.Time.Offset)) {
		return errors.Newf(errors.ErrConfigValid, "invalid time.offset %q", c.Time.Offset).
			WithDetail("key", "time.offset")
	}
	return nil
}

// Mode returns the configured render mode.
func (c *Config) Mode() format.Mode {
	m, err := format.ParseMode(c.Render.Mode)
	if err != nil {
		return format.Normal
	}
	return m
}

// Unit returns the configured indent unit.
func (c *Config) Unit() string {
	u, err := IndentUnit(c.Render.Indent)
	if err != nil {
		return format.DefaultUnit
	}
	return u
}

// Offset returns the configured UTC offset with "local" resolved.
func (c *Config) Offset() string {
	off := timestamp.ResolveOffset(c.Time.Offset)
	if !timestamp.ValidOffset(off) {
		return timestamp.UTC
	}
	return off
}

// Controller builds a formatting controller at level from the settings.
func (c *Config) Controller(level int) format.Controller {
	return format.NewWithUnit(level, c.Mode(), c.Unit())
}

// IndentUnit decodes an indent setting: "tab", "spaces:N" or a literal
// string. An empty setting means a tab.
func IndentUnit(s string) (string, error) {
	switch {
	case s == "" || s == "tab":
		return format.DefaultUnit, nil
	case strings.HasPrefix(s, "spaces:"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "spaces:"))
		if err != nil || n < 1 || n > 16 {
			return "", errors.Newf(errors.ErrConfigValid, "invalid render.indent %q", s).
				WithDetail("key", "render.indent")
		}
		return strings.Repeat(" ", n), nil
	case strings.Trim(s, " \t") != "":
		return "", errors.Newf(errors.ErrConfigValid, "render.indent must be whitespace, got %q", s).
			WithDetail("key", "render.indent")
	}
	return s, nil
}
