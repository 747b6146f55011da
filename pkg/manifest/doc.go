// Package manifest reads feed manifests and builds Atom documents from them.
//
// A manifest is a YAML or TOML file describing a feed, its entries and any
// comments to place around the root element. Values are plain text; Build
// escapes them for the markup. Timestamps are strings in the Atom profile,
// e.g. "2003-12-13T18:30:02Z" (quote them in TOML).
package manifest
