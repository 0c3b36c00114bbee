package components

import (
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
)

// AlertDef describes the dismissible alert box. All authored content lands
// in the single body region; the variant attribute picks the toolkit's
// contextual class.
var AlertDef = &element.Definition{
	Name:   "alert",
	Widget: "alert",
	Regions: []element.Region{
		{Name: "body", Empty: element.KeepWhenEmpty, Mode: element.ModeAppend},
	},
	DefaultRegion: "body",
	Build: func(h *element.Host) *dom.Node {
		dismissible := h.Node().HasAttr("dismissible")
		root := dom.Div(dom.Class("alert", "alert-"+h.AttrOr("variant", "info")), dom.Role("alert"),
			h.MarkRegion("body", dom.Div(dom.Class("alert-body"))),
			dom.If(dismissible,
				dom.Button(dom.Type("button"), dom.Class("alert-close"), dom.AriaLabel("Close"))),
		)
		if dismissible {
			root.AddClass("alert-dismissible")
		}
		return root
	},
	Setup: func(h *element.Host) {
		h.Env().Assets.EnsureStylesheet(ToolkitCSS)
	},
}

// Alert is a dismissible message box.
type Alert struct {
	*element.Host
}

func NewAlert(env *element.Env, args ...any) *Alert {
	return &Alert{element.New(AlertDef, env, args...)}
}

func AdoptAlert(env *element.Env, node *dom.Node) *Alert {
	return &Alert{element.Adopt(AlertDef, env, node)}
}

// Close dismisses the alert via the toolkit widget.
func (a *Alert) Close() { a.Hide() }
