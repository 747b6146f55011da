package atom

import (
	"fmt"
	"strings"
	"time"
)

var (
	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// EscapeHTML escapes &, < and > so markup prints literally.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeAttr escapes a value for a double-quoted attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// EntitiesToSpace replaces HTML non-breaking space entities with a space.
func EntitiesToSpace(s string) string {
	return strings.ReplaceAll(s, "&nbsp;", " ")
}

// NormalizeSpace collapses each run of whitespace into one space and trims
// both ends.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NewTagID builds a tag: URI id (RFC 4151) for something published at t on
// domain. An empty uri defaults to /weblog/ followed by t as YYYYMMDDhhmmss.
// Any '#' becomes '/'.
func NewTagID(t time.Time, domain, uri string) string {
	if uri == "" {
		uri = "/weblog/" + t.Format("20060102150405")
	}
	id := fmt.Sprintf("tag:%s,%s:%s", domain, t.Format("2006-01-02"), uri)
	return strings.ReplaceAll(id, "#", "/")
}

// DefaultCopyrightSymbol is used when Copyright is given no symbol.
const DefaultCopyrightSymbol = "(C)"

// Copyright returns a notice such as "Copyright (C) 2003-2005 by Jane.".
// A zero endYear means the current year; a zero startYear prints one year.
func Copyright(owner, symbol string, endYear, startYear int) string {
	if symbol == "" {
		symbol = DefaultCopyrightSymbol
	}
	if endYear == 0 {
		endYear = time.Now().Year()
	}
	if startYear != 0 {
		return fmt.Sprintf("Copyright %s %d-%d by %s.", symbol, startYear, endYear, owner)
	}
	return fmt.Sprintf("Copyright %s %d by %s.", symbol, endYear, owner)
}
