package timestamp

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
)

// Layout is the wall-clock part of the profile, in Go reference-time form.
const Layout = "2006-01-02T15:04:05"

// UTC is the offset string for Zulu time.
const UTC = "Z"

// The four-digit years the profile can spell, as seconds since the epoch.
const (
	minInstant = -62135596800 // 0001-01-01T00:00:00Z
	maxInstant = 253402300799 // 9999-12-31T23:59:59Z
)

var (
	patTimestamp = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(.*)$`)
	patOffset    = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)
)

// Format renders the instant t (seconds since the epoch) with the given
// offset string. The wall clock is t shifted by the offset. Fractional
// seconds are dropped. An unset (zero) instant formats as "", and so does
// NaN, an infinity, or a wall clock outside years 0001 to 9999.
func Format(t float64, offset string) string {
	if t == 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return ""
	}
	wall := math.Floor(t) + float64(OffsetSeconds(offset))
	if wall < minInstant || wall > maxInstant {
		return ""
	}
	return time.Unix(int64(wall), 0).UTC().Format(Layout) + offset
}

// Parse reads a timestamp string and returns the UTC instant it names.
// Surrounding whitespace is ignored. A "Z"/"z" suffix or a missing suffix
// means offset zero, "±HH:MM" is applied, and any other suffix is treated as
// offset zero.
func Parse(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	m := patTimestamp.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, errors.Newf(errors.ErrInvalidTimestamp, "value must be a valid timestamp string: %q", s).
			WithDetail("value", s)
	}

	fields := make([]int, 6)
	for i := range fields {
		// the pattern guarantees digits
		fields[i], _ = strconv.Atoi(m[i+1])
	}
	wall := time.Date(fields[0], time.Month(fields[1]), fields[2],
		fields[3], fields[4], fields[5], 0, time.UTC)

	return float64(wall.Unix() - int64(OffsetSeconds(m[7]))), nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) float64 {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Valid reports whether s parses.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// OffsetSeconds returns the signed number of seconds an offset string adds to
// UTC. "", "Z", "z" and anything that is not "±HH:MM" yield 0.
func OffsetSeconds(offset string) int {
	offset = strings.TrimSpace(offset)
	m := patOffset.FindStringSubmatch(offset)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	secs := hours*3600 + minutes*60
	if m[1] == "-" {
		secs = -secs
	}
	return secs
}

// ValidOffset reports whether s is "Z", "z" or "±HH:MM".
func ValidOffset(s string) bool {
	return s == UTC || s == "z" || patOffset.MatchString(s)
}

// FormatOffset renders a signed number of seconds as "±HH:MM".
func FormatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, (seconds/60)%60)
}

// LocalOffset returns the offset of the local time zone right now.
func LocalOffset() string {
	_, secs := time.Now().Zone()
	return FormatOffset(secs)
}

// ResolveOffset maps configuration values to an offset string: "local"
// becomes LocalOffset(), "utc" becomes "Z", anything else is returned as is.
func ResolveOffset(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return LocalOffset()
	case "", "utc", "z":
		return UTC
	}
	return strings.TrimSpace(s)
}

// Now returns the current instant truncated to whole seconds.
func Now() float64 {
	return float64(time.Now().Unix())
}

// FromTime converts a time.Time to seconds since the epoch.
func FromTime(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.UnixNano()) / float64(time.Second)
}

// ToTime converts seconds since the epoch to a UTC time.Time.
func ToTime(t float64) time.Time {
	secs := math.Floor(t)
	nanos := int64((t - secs) * float64(time.Second))
	return time.Unix(int64(secs), nanos).UTC()
}
