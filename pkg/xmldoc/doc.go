// Package xmldoc is a small XML object model that renders itself.
//
// A document is a tree of Nodes: elements (text leaves, nesting elements and
// elements that hold either), timestamps, comments, processing instructions,
// markup declarations and typed collections. Every node renders itself with
// Render, consulting a format.Controller for indentation and verbosity, so
// rendering the Document renders the whole tree.
//
// Trees are built through a constrained mutation protocol. Elements expose
// named slots; Assign routes convenience values (a string into a text slot, a
// time into a timestamp slot) and rejects assignments that would break the
// tree's invariants. Collections accept only members of their declared
// Category. Every rejection is a *errors.DocError and leaves the tree as it
// was.
//
// Element text and attribute values are written verbatim. Callers that need a
// literal '<' or '&' must escape it first.
//
// A tree has no internal locking; build and render it from one goroutine.
package xmldoc
