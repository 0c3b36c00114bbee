package components

import (
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
	"github.com/facet-ui/facet/pkg/plugin"
)

// TooltipDef is the one attribute-only component: no regions beyond the
// default, all behavior driven by the text and placement attributes.
var TooltipDef = &element.Definition{
	Name:   "tooltip",
	Widget: "tooltip",
	Regions: []element.Region{
		{Name: "body", Empty: element.KeepWhenEmpty, Mode: element.ModeAppend},
	},
	DefaultRegion: "body",
	Build: func(h *element.Host) *dom.Node {
		return dom.Span(dom.Class("tooltip-anchor"),
			h.MarkRegion("body", dom.Span(dom.Class("tooltip-target"))),
		)
	},
	PluginOptions: func(h *element.Host) plugin.Options {
		return plugin.Options{
			"title":     h.AttrOr("text", ""),
			"placement": h.AttrOr("placement", "top"),
		}
	},
}

// Tooltip attaches hover text to its content.
type Tooltip struct {
	*element.Host
}

func NewTooltip(env *element.Env, args ...any) *Tooltip {
	return &Tooltip{element.New(TooltipDef, env, args...)}
}

func AdoptTooltip(env *element.Env, node *dom.Node) *Tooltip {
	return &Tooltip{element.Adopt(TooltipDef, env, node)}
}
