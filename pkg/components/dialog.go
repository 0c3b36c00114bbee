package components

import (
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
	"github.com/facet-ui/facet/pkg/plugin"
)

// ToolkitCSS is the shared stylesheet every visual component depends on.
// Components ensure it during materialization; the injector deduplicates.
const ToolkitCSS = "toolkit.css"

// DialogDef describes the modal dialog.
//
// Regions: "header" is generated from the host's title attribute and
// replaced wholesale by a slotted override; "body" is the default region
// and always present; "footer" exists only when a child is slotted into it.
var DialogDef = &element.Definition{
	Name:   "dialog",
	Widget: "modal",
	Regions: []element.Region{
		{Name: "header", Empty: element.RemoveWhenEmpty, Mode: element.ModeOverride},
		{Name: "body", Empty: element.KeepWhenEmpty, Mode: element.ModeAppend},
		{Name: "footer", Empty: element.RemoveWhenEmpty, Mode: element.ModeAppend},
	},
	DefaultRegion: "body",
	Build: func(h *element.Host) *dom.Node {
		title, hasTitle := h.Attr("title")
		header := h.MarkRegion("header", dom.Div(dom.Class("modal-header"),
			dom.When(hasTitle, func() *dom.Node {
				return dom.H5(dom.Class("modal-title"), title)
			}),
		))
		return dom.Div(dom.Class("modal"), dom.Role("dialog"), dom.AriaModal(true), dom.TabIndex(-1),
			dom.Div(dom.Class("modal-dialog"),
				dom.Div(dom.Class("modal-content"),
					header,
					h.MarkRegion("body", dom.Div(dom.Class("modal-body"))),
					h.MarkRegion("footer", dom.Div(dom.Class("modal-footer"))),
				),
			),
		)
	},
	PluginOptions: func(h *element.Host) plugin.Options {
		opts := plugin.Options{"backdrop": true, "keyboard": true}
		if h.Node().HasAttr("static") {
			opts["backdrop"] = "static"
			opts["keyboard"] = false
		}
		return opts
	},
	Setup: func(h *element.Host) {
		h.Env().Assets.EnsureStylesheet(ToolkitCSS)
	},
}

// Dialog is a modal dialog host element.
type Dialog struct {
	*element.Host
}

// NewDialog creates a detached dialog element.
func NewDialog(env *element.Env, args ...any) *Dialog {
	return &Dialog{element.New(DialogDef, env, args...)}
}

// AdoptDialog wraps an authored <facet-dialog> element.
func AdoptDialog(env *element.Env, node *dom.Node) *Dialog {
	return &Dialog{element.Adopt(DialogDef, env, node)}
}
