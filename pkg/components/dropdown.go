package components

import (
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
	"github.com/facet-ui/facet/pkg/plugin"
)

// DropdownDef describes the toggle-button-plus-menu pattern. The trigger
// region is generated from the label attribute and can be overridden with a
// slotted child; menu items are the default region.
var DropdownDef = &element.Definition{
	Name:   "dropdown",
	Widget: "dropdown",
	Regions: []element.Region{
		{Name: "trigger", Empty: element.KeepWhenEmpty, Mode: element.ModeOverride},
		{Name: "menu", Empty: element.KeepWhenEmpty, Mode: element.ModeAppend},
	},
	DefaultRegion: "menu",
	Build: func(h *element.Host) *dom.Node {
		trigger := h.MarkRegion("trigger", dom.Div(dom.Class("dropdown-trigger")))
		trigger.AppendChild(dom.Button(
			dom.Type("button"), dom.Class("dropdown-toggle"), dom.AriaExpanded(false),
			h.AttrOr("label", "Menu"),
		))
		return dom.Div(dom.Class("dropdown"),
			trigger,
			h.MarkRegion("menu", dom.Ul(dom.Class("dropdown-menu"), dom.Role("menu"))),
		)
	},
	PluginOptions: func(h *element.Host) plugin.Options {
		return plugin.Options{"autoClose": h.AttrOr("auto-close", "true")}
	},
}

// Dropdown is a trigger button with an attached menu.
type Dropdown struct {
	*element.Host
}

func NewDropdown(env *element.Env, args ...any) *Dropdown {
	return &Dropdown{element.New(DropdownDef, env, args...)}
}

func AdoptDropdown(env *element.Env, node *dom.Node) *Dropdown {
	return &Dropdown{element.Adopt(DropdownDef, env, node)}
}
