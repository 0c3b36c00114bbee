package components

import (
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
	"github.com/facet-ui/facet/pkg/plugin"
)

// CollapseDef describes the toggled panel. The expanded attribute renders
// the panel open; the parent attribute groups panels accordion-style so the
// toolkit closes siblings.
var CollapseDef = &element.Definition{
	Name:   "collapse",
	Widget: "collapse",
	Regions: []element.Region{
		{Name: "body", Empty: element.KeepWhenEmpty, Mode: element.ModeAppend},
	},
	DefaultRegion: "body",
	Build: func(h *element.Host) *dom.Node {
		root := dom.Div(dom.Class("collapse"),
			h.MarkRegion("body", dom.Div(dom.Class("collapse-body"))),
		)
		if h.Node().HasAttr("expanded") {
			root.AddClass("show")
		}
		return root
	},
	PluginOptions: func(h *element.Host) plugin.Options {
		opts := plugin.Options{"toggle": false}
		if parent, ok := h.Attr("parent"); ok {
			opts["parent"] = parent
		}
		return opts
	},
}

// Collapse is a show/hide content panel.
type Collapse struct {
	*element.Host
}

func NewCollapse(env *element.Env, args ...any) *Collapse {
	return &Collapse{element.New(CollapseDef, env, args...)}
}

func AdoptCollapse(env *element.Env, node *dom.Node) *Collapse {
	return &Collapse{element.Adopt(CollapseDef, env, node)}
}
