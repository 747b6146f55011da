// Package config loads atomdoc settings. Values come from the embedded
// defaults, an optional TOML or YAML file, ATOMDOC_* environment variables
// and command-line overrides, in increasing order of precedence.
package config
