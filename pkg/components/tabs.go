package components

import (
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
)

// TabsDef describes the tab strip. Children slotted "tab" become nav
// entries; everything else becomes panel content in document order.
var TabsDef = &element.Definition{
	Name:   "tabs",
	Widget: "tab",
	Regions: []element.Region{
		{Name: "tab", Empty: element.RemoveWhenEmpty, Mode: element.ModeAppend},
		{Name: "panels", Empty: element.KeepWhenEmpty, Mode: element.ModeAppend},
	},
	DefaultRegion: "panels",
	Build: func(h *element.Host) *dom.Node {
		return dom.Div(dom.Class("tabs"),
			h.MarkRegion("tab", dom.Ul(dom.Class("tabs-nav"), dom.Role("tablist"))),
			h.MarkRegion("panels", dom.Div(dom.Class("tabs-content"))),
		)
	},
}

// Tabs is a tabbed content switcher.
type Tabs struct {
	*element.Host
}

func NewTabs(env *element.Env, args ...any) *Tabs {
	return &Tabs{element.New(TabsDef, env, args...)}
}

func AdoptTabs(env *element.Env, node *dom.Node) *Tabs {
	return &Tabs{element.Adopt(TabsDef, env, node)}
}
