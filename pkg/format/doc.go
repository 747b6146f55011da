// Package format holds the formatting controller threaded through every
// render call of the document model.
//
// A Controller is an immutable value: a nesting level, a verbosity mode and
// the indent unit. Rendering code never mutates one; it asks for a Deeper
// copy when it descends into contents.
package format
