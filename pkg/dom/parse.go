package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses an HTML fragment (body context) into nodes.
// Comments and other non-content nodes are dropped.
func ParseFragment(src string) ([]*Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	parsed, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return nil, err
	}

	nodes := make([]*Node, 0, len(parsed))
	for _, h := range parsed {
		if n := fromHTMLNode(h); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// fromHTMLNode converts an x/net/html node subtree into a dom subtree.
func fromHTMLNode(h *html.Node) *Node {
	switch h.Type {
	case html.TextNode:
		return Text(h.Data)
	case html.ElementNode:
		n := NewElement(h.Data)
		for _, a := range h.Attr {
			n.SetAttr(a.Key, a.Val)
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTMLNode(c); child != nil {
				n.AppendChild(child)
			}
		}
		return n
	default:
		return nil
	}
}

// toHTMLNode converts a dom subtree into an x/net/html subtree, recording
// the reverse mapping so selector matches can be translated back.
func toHTMLNode(n *Node, back map[*html.Node]*Node) *html.Node {
	var h *html.Node
	switch n.Kind {
	case KindElement:
		h = &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
		}
		for k, v := range n.Attrs {
			h.Attr = append(h.Attr, html.Attribute{Key: k, Val: v})
		}
		for _, c := range n.Children {
			if hc := toHTMLNode(c, back); hc != nil {
				h.AppendChild(hc)
			}
		}
	case KindText, KindRaw:
		h = &html.Node{Type: html.TextNode, Data: n.Text}
	default:
		return nil
	}
	if back != nil {
		back[h] = n
	}
	return h
}
