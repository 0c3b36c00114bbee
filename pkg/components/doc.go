// Package components is the collection of Facet host elements, each
// wrapping one widget of the presentation toolkit.
//
// Every component is a thin element.Definition: the toolkit's required
// markup, the named regions authored children slot into, and the widget the
// host delegates show/hide/toggle to. Typed wrappers (Dialog, Drawer, ...)
// add the widget-specific pass-through methods.
//
// Authored usage mirrors the toolkit's custom elements:
//
//	<facet-dialog title="Delete?">
//	  <p>This cannot be undone.</p>
//	  <button slot="footer">Delete</button>
//	</facet-dialog>
//
// Adopt the parsed element (or build one programmatically), attach it, and
// flush the environment's loop; the host materializes the toolkit markup
// and distributes the children.
package components
