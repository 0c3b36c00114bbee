package dom

// Document is the root of a node tree. It owns the <html> element and gives
// host elements a stable place for origin-wide concerns: the head (shared
// asset injection) and root-element attributes (theme markers).
type Document struct {
	root *Node
	head *Node
	body *Node
}

// NewDocument creates an empty document with html, head and body elements.
func NewDocument() *Document {
	head := NewElement("head")
	body := NewElement("body")
	root := NewElement("html")
	root.AppendChild(head)
	root.AppendChild(body)
	return &Document{root: root, head: head, body: body}
}

// Root returns the document element (<html>).
func (d *Document) Root() *Node { return d.root }

// Head returns the <head> element.
func (d *Document) Head() *Node { return d.head }

// Body returns the <body> element.
func (d *Document) Body() *Node { return d.body }

// Contains reports whether n is attached under the document element.
func (d *Document) Contains(n *Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == d.root {
			return true
		}
	}
	return false
}
