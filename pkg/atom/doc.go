// Package atom builds Atom 1.0 (RFC 4287) documents on top of xmldoc.
//
// Each Atom construct is an xmldoc element with a fixed tag, a fixed
// attribute render order and a category, so collections such as a feed's
// entries or an entry's links only accept the right kind of element.
//
//	doc := xmldoc.NewDocument()
//	feed := atom.NewFeed()
//	_ = doc.SetRoot(feed)
//	_ = feed.Assign("title", "Example Feed")
//	_ = feed.Assign("updated", "2003-12-13T18:30:02Z")
//	_ = feed.Authors().Append(atom.NewAuthor("John Doe"))
package atom
