package format

import (
	"fmt"
	"strings"
)

// Mode selects how much the renderer emits.
type Mode int

const (
	// Terse emits no indentation at all.
	Terse Mode = iota
	// Normal indents and suppresses empty optional items.
	Normal
	// Verbose indents, renders empty items and annotates collections.
	Verbose
)

// DefaultUnit is the indent unit used when none is given.
const DefaultUnit = "\t"

// bigIndentUnits is how many units the precomputed indent buffer holds.
const bigIndentUnits = 256

var modeNames = map[Mode]string{
	Terse:   "terse",
	Normal:  "normal",
	Verbose: "verbose",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "terse":
		return Terse, nil
	case "", "normal":
		return Normal, nil
	case "verbose":
		return Verbose, nil
	}
	return Normal, fmt.Errorf("unknown render mode %q (want terse, normal or verbose)", s)
}

// Controller carries the indent level, mode and indent unit for one render
// call. The zero value is level 0, terse mode, tab indent.
type Controller struct {
	level int
	mode  Mode
	unit  string
	big   string
}

// New returns a controller at level using the default tab indent.
func New(level int, mode Mode) Controller {
	return NewWithUnit(level, mode, DefaultUnit)
}

// NewWithUnit returns a controller at level indenting with unit.
func NewWithUnit(level int, mode Mode, unit string) Controller {
	if level < 0 {
		level = 0
	}
	if unit == "" {
		unit = DefaultUnit
	}
	return Controller{
		level: level,
		mode:  mode,
		unit:  unit,
		big:   strings.Repeat(unit, bigIndentUnits),
	}
}

// NormalAt, VerboseAt and TerseAt are shortcuts for New at the given level.
func NormalAt(level int) Controller  { return New(level, Normal) }
func VerboseAt(level int) Controller { return New(level, Verbose) }
func TerseAt(level int) Controller   { return New(level, Terse) }

func (c Controller) Level() int   { return c.level }
func (c Controller) Mode() Mode   { return c.mode }
func (c Controller) Unit() string { return c.unitOrDefault() }

// IsTerse reports whether indentation is disabled.
func (c Controller) IsTerse() bool { return c.mode == Terse }

// IsVerbose reports whether verbose annotations are enabled.
func (c Controller) IsVerbose() bool { return c.mode == Verbose }

// ShouldRenderEmpty reports whether empty items must still be rendered.
// Level 0 items always render so the document keeps its shape.
func (c Controller) ShouldRenderEmpty() bool {
	return c.level == 0 || c.mode == Verbose
}

// Deeper returns a controller by levels further in, same mode and unit.
func (c Controller) Deeper(by int) Controller {
	next := c
	next.level = c.level + by
	if next.level < 0 {
		next.level = 0
	}
	return next
}

// Indent returns the indent prefix for the current level plus any extra
// levels. Terse controllers always return "".
func (c Controller) Indent(extra ...int) string {
	if c.mode == Terse {
		return ""
	}
	level := c.level
	for _, e := range extra {
		level += e
	}
	if level <= 0 {
		return ""
	}
	unit := c.unitOrDefault()
	n := level * len(unit)
	if n <= len(c.big) {
		return c.big[:n]
	}
	return strings.Repeat(unit, level)
}

func (c Controller) unitOrDefault() string {
	if c.unit == "" {
		return DefaultUnit
	}
	return c.unit
}
