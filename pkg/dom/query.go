package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// QueryAll returns every element under root (inclusive) matching the CSS
// selector, in document order.
func QueryAll(root *Node, selector string) ([]*Node, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, err
	}
	back := make(map[*html.Node]*Node)
	h := toHTMLNode(root, back)
	if h == nil {
		return nil, nil
	}
	var out []*Node
	for _, m := range cascadia.QueryAll(h, sel) {
		if n, ok := back[m]; ok {
			out = append(out, n)
		}
	}
	// QueryAll skips the root itself; check it separately so subtree
	// operations include the subtree's own element.
	if root.Kind == KindElement && sel.Match(h) {
		out = append([]*Node{root}, out...)
	}
	return out, nil
}

// Query returns the first element matching the selector, or nil.
func Query(root *Node, selector string) (*Node, error) {
	matches, err := QueryAll(root, selector)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}
