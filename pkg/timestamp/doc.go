// Package timestamp reads and writes the date-time profile used by Atom
// documents: an RFC 3339 / ISO 8601 date-time without fractional seconds,
// followed by an explicit UTC offset ("Z" or "±HH:MM").
//
//	2003-12-13T18:30:02Z
//	2003-12-13T18:30:02+02:00
//
// Instants are carried as float64 seconds since the Unix epoch. The value 0
// is the "unset" sentinel and formats as the empty string.
package timestamp
