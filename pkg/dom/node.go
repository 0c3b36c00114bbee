package dom

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
	KindRaw                 // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is a mutable document tree node. Unlike an immutable render tree,
// nodes carry parent pointers and support in-place structural edits, which
// is what host elements need when they move authored children into
// generated markup.
type Node struct {
	Kind     Kind
	Tag      string            // Element tag name (e.g., "div")
	Attrs    map[string]string // Attributes (element nodes only)
	Children []*Node
	Parent   *Node
	Text     string // For KindText and KindRaw
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// NewElement creates a bare element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{
		Kind:  KindElement,
		Tag:   tag,
		Attrs: make(map[string]string),
	}
}

// SetAttr sets an attribute. Boolean true produces a value-less attribute,
// boolean false removes it; other values are stringified.
func (n *Node) SetAttr(key string, value any) {
	if n.Kind != KindElement || key == "" {
		return
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	switch v := value.(type) {
	case bool:
		if v {
			n.Attrs[key] = ""
		} else {
			delete(n.Attrs, key)
		}
	case string:
		n.Attrs[key] = v
	default:
		n.Attrs[key] = fmt.Sprintf("%v", v)
	}
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	if n.Kind != KindElement || n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[key]
	return v, ok
}

// AttrOr returns the attribute value or the fallback when absent.
func (n *Node) AttrOr(key, fallback string) string {
	if v, ok := n.Attr(key); ok {
		return v
	}
	return fallback
}

// HasAttr reports whether the attribute is present, regardless of value.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// RemoveAttr deletes an attribute if present.
func (n *Node) RemoveAttr(key string) {
	if n.Attrs != nil {
		delete(n.Attrs, key)
	}
}

// AppendChild appends child to n, detaching it from any previous parent.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Detach()
	child.Parent = n
	n.Children = append(n.Children, child)
}

// InsertBefore inserts child immediately before ref. When ref is nil or not
// a child of n, child is appended instead.
func (n *Node) InsertBefore(child, ref *Node) {
	if child == nil || child == n {
		return
	}
	idx := n.indexOf(ref)
	if idx < 0 {
		n.AppendChild(child)
		return
	}
	child.Detach()
	child.Parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[idx+1:], n.Children[idx:])
	n.Children[idx] = child
}

// RemoveChild removes child from n. It is a no-op when child is not a
// direct child of n.
func (n *Node) RemoveChild(child *Node) {
	idx := n.indexOf(child)
	if idx < 0 {
		return
	}
	n.Children = append(n.Children[:idx], n.Children[idx+1:]...)
	child.Parent = nil
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// ReplaceChildren removes all existing children and appends the given ones.
func (n *Node) ReplaceChildren(children ...*Node) {
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = n.Children[:0]
	for _, c := range children {
		n.AppendChild(c)
	}
}

// TakeChildren detaches and returns the node's children in document order.
// This is the one-pass capture used before a host element replaces its own
// markup: the returned slice is stable even as the tree is rebuilt.
func (n *Node) TakeChildren() []*Node {
	taken := make([]*Node, len(n.Children))
	copy(taken, n.Children)
	for _, c := range taken {
		c.Parent = nil
	}
	n.Children = n.Children[:0]
	return taken
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// indexOf returns the index of child in n.Children, or -1.
func (n *Node) indexOf(child *Node) int {
	if child == nil {
		return -1
	}
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Walk visits n and every descendant in document order. Returning false
// from fn stops descent into that subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// TextContent returns the concatenated text of the subtree.
func (n *Node) TextContent() string {
	var out string
	n.Walk(func(c *Node) bool {
		if c.Kind == KindText {
			out += c.Text
		}
		return true
	})
	return out
}
