package element

import (
	"log/slog"

	"github.com/facet-ui/facet/pkg/dom"
)

// InitAll adopts and connects every element under root whose tag matches
// one of the given component kinds. Already-adopted elements are reused,
// so repeated passes over overlapping subtrees are safe. Returns the hosts
// in document order.
func InitAll(env *Env, root *dom.Node, defs ...*Definition) []*Host {
	byTag := make(map[string]*Definition, len(defs))
	for _, def := range defs {
		byTag[def.TagName()] = def
	}

	var hosts []*Host
	root.Walk(func(n *dom.Node) bool {
		if n.Kind != dom.KindElement {
			return true
		}
		def, ok := byTag[n.Tag]
		if !ok {
			return true
		}
		h := Adopt(def, env, n)
		h.Connected()
		hosts = append(hosts, h)
		// Keep descending: at this point the host's children are still
		// authored light DOM, which may nest further host elements.
		return true
	})
	return hosts
}

// InitSelector adopts and connects matching hosts by CSS selector instead
// of tag name, for toolkit markup that opts in via attributes.
func InitSelector(env *Env, root *dom.Node, selector string, def *Definition) ([]*Host, error) {
	matches, err := dom.QueryAll(root, selector)
	if err != nil {
		return nil, err
	}
	hosts := make([]*Host, 0, len(matches))
	for _, n := range matches {
		h := Adopt(def, env, n)
		h.Connected()
		hosts = append(hosts, h)
	}
	return hosts, nil
}

// DisposeAll releases the widget handle of every adopted host under root.
// Markup stays in place; hosts recreate handles on demand.
func DisposeAll(env *Env, root *dom.Node) int {
	disposed := 0
	root.Walk(func(n *dom.Node) bool {
		if h := env.hostOf(n); h != nil {
			h.Dispose()
			disposed++
		}
		return true
	})
	if disposed > 0 {
		env.Logger.Debug("batch disposed widget handles",
			slog.Int("count", disposed))
	}
	return disposed
}
