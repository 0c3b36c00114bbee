package components

import (
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
	"github.com/facet-ui/facet/pkg/plugin"
)

// DrawerDef describes the edge panel (offcanvas). The placement attribute
// picks the edge: start, end, top, bottom.
var DrawerDef = &element.Definition{
	Name:   "drawer",
	Widget: "offcanvas",
	Regions: []element.Region{
		{Name: "header", Empty: element.RemoveWhenEmpty, Mode: element.ModeOverride},
		{Name: "body", Empty: element.KeepWhenEmpty, Mode: element.ModeAppend},
	},
	DefaultRegion: "body",
	Build: func(h *element.Host) *dom.Node {
		header := h.MarkRegion("header", dom.Div(dom.Class("drawer-header")))
		if title, ok := h.Attr("title"); ok {
			header.AppendChild(dom.H5(dom.Class("drawer-title"), title))
		}
		return dom.Div(dom.Class("drawer", "drawer-"+h.AttrOr("placement", "start")), dom.TabIndex(-1),
			header,
			h.MarkRegion("body", dom.Div(dom.Class("drawer-body"))),
		)
	},
	PluginOptions: func(h *element.Host) plugin.Options {
		return plugin.Options{
			"backdrop": !h.Node().HasAttr("no-backdrop"),
			"scroll":   h.Node().HasAttr("allow-scroll"),
		}
	},
	Setup: func(h *element.Host) {
		h.Env().Assets.EnsureStylesheet(ToolkitCSS)
	},
}

// Drawer slides in from a document edge.
type Drawer struct {
	*element.Host
}

func NewDrawer(env *element.Env, args ...any) *Drawer {
	return &Drawer{element.New(DrawerDef, env, args...)}
}

func AdoptDrawer(env *element.Env, node *dom.Node) *Drawer {
	return &Drawer{element.Adopt(DrawerDef, env, node)}
}
