// Package styles defines the visual styling for atomdoc's terminal output.
//
// Styles have semantic names (Success, Error, FilePath, ...) and adaptive
// colors, loaded from an embedded YAML sheet. Styling is switched off when
// the output is not a terminal or NO_COLOR is set.
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Names of the built-in styles.
var Names = []string{
	"Header", "Success", "Error", "Warning", "Info",
	"Muted", "Italic", "Bold", "FilePath", "Tag", "Value",
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	registry map[string]lipgloss.Style
	enabled  = DetectColor(os.Stdout)
)

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

// initDefaultStyles registers unstyled entries so lookups never fail.
func initDefaultStyles() {
	registry = make(map[string]lipgloss.Style)
	for _, name := range Names {
		registry[name] = lipgloss.NewStyle()
	}
}

// LoadStylesFromData replaces the registry with the styles in data.
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		registry[name] = buildStyle(def, colors)
	}
	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}
	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether a style is registered under name.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// Render applies the named style to s, or returns s as is when styling is
// off.
func Render(name, s string) string {
	if !enabled {
		return s
	}
	return GetStyle(name).Render(s)
}

// SetEnabled switches styling on or off and returns the previous setting.
func SetEnabled(on bool) bool {
	prev := enabled
	enabled = on
	return prev
}

// Enabled reports whether Render applies styles.
func Enabled() bool { return enabled }

// DetectColor reports whether f is a terminal that should get color.
func DetectColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Embedded returns the built-in style sheet.
func Embedded() []byte {
	return embeddedStyles
}
