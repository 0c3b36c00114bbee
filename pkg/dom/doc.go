// Package dom provides the mutable document tree that Facet host elements
// materialize into.
//
// Unlike a render-only virtual tree, these nodes carry parent pointers and
// support in-place structural edits: host elements capture their authored
// children, replace their own markup with generated structure, and move the
// captured children into named regions of that structure.
//
// # Core Types
//
// Node is the fundamental building block representing elements, text, and
// raw HTML. Document wraps a root <html> element and exposes the head and
// body, which host elements use for shared asset injection and origin-wide
// theme markers.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Parsing and Queries
//
// ParseFragment converts authored HTML into nodes. Query and QueryAll run
// CSS selectors over a subtree; batch component initialization is built on
// them.
package dom
